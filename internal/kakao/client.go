package kakao

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"eatda/internal/apperr"
	"eatda/pkg/metrics"
)

const keywordSearchPath = "/v2/local/search/keyword.json"

type Config struct {
	RestAPIKey string
	BaseURL    string
	Timeout    time.Duration
	PageSize   int // 1..15
}

// Client calls the Kakao Local keyword search API.
type Client struct {
	http     *resty.Client
	pageSize int
}

func NewClient(cfg *Config) *Client {
	pageSize := cfg.PageSize
	if pageSize < 1 || pageSize > 15 {
		pageSize = 15
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetHeader("Authorization", "KakaoAK "+cfg.RestAPIKey).
		SetHeader("Accept", "application/json")

	return &Client{http: httpClient, pageSize: pageSize}
}

// SearchShops runs a keyword search with the query passed through verbatim.
// Transport failures and non-2xx responses become MAP_SERVER_ERROR.
func (c *Client) SearchShops(ctx context.Context, query string) ([]StoreSearchResult, error) {
	start := time.Now()
	results, err := c.search(ctx, query)
	metrics.ObserveMapSearch(err, time.Since(start))
	return results, err
}

func (c *Client) search(ctx context.Context, query string) ([]StoreSearchResult, error) {
	var body keywordSearchResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"query": query,
			"size":  strconv.Itoa(c.pageSize),
		}).
		SetResult(&body).
		Get(keywordSearchPath)
	if err != nil {
		return nil, apperr.Wrap(apperr.MapServerError, err)
	}
	if resp.IsError() {
		return nil, apperr.Wrap(apperr.MapServerError,
			fmt.Errorf("kakao keyword search: status %d: %s", resp.StatusCode(), resp.String()))
	}

	results := make([]StoreSearchResult, 0, len(body.Documents))
	for _, doc := range body.Documents {
		result, ok := doc.toResult()
		if !ok {
			zap.L().Debug("skip place with malformed coordinates",
				zap.String("kakao_id", doc.ID), zap.String("x", doc.X), zap.String("y", doc.Y))
			continue
		}
		results = append(results, result)
	}
	return results, nil
}
