package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"eatda/internal/apperr"
	"eatda/pkg/cache"
	"eatda/pkg/metrics"
)

// ==================== Interfaces ====================

// ImageStorage turns stored image keys into time-limited download URLs.
type ImageStorage interface {
	PresignedURL(ctx context.Context, imageKey string) (string, error)
}

// StorageProvider is one blob-storage backend.
type StorageProvider interface {
	GetSignedURL(ctx context.Context, key string, expires time.Duration) (signedURL string, err error)
}

// ==================== Config ====================

type StorageConfig struct {
	Provider       string // "s3" | "local"
	Bucket         string
	Region         string
	AccessKey      string
	SecretKey      string
	Endpoint       string // S3-compatible endpoint (MinIO etc.)
	PresignExpires time.Duration
	URLCacheTTL    time.Duration // zero disables reuse of signed URLs
	LocalBaseURL   string
}

const defaultPresignExpires = 10 * time.Minute

// ==================== Factory ====================

func NewStorageProvider(cfg *StorageConfig) (StorageProvider, error) {
	switch cfg.Provider {
	case "s3":
		return NewS3Storage(cfg)
	case "local":
		return NewLocalStorage(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported storage provider: %q", cfg.Provider)
	}
}

// ==================== StorageService ====================

// StorageService presigns image keys through the configured provider.
type StorageService struct {
	provider StorageProvider
	expires  time.Duration
	urls     *cache.TTL[string, string]
}

func NewStorageService(cfg *StorageConfig) (*StorageService, error) {
	provider, err := NewStorageProvider(cfg)
	if err != nil {
		return nil, err
	}
	svc := NewStorageServiceWithProvider(provider, cfg.PresignExpires)
	svc.EnableURLCache(cfg.URLCacheTTL)
	return svc, nil
}

func NewStorageServiceWithProvider(provider StorageProvider, expires time.Duration) *StorageService {
	if expires <= 0 {
		expires = defaultPresignExpires
	}
	return &StorageService{provider: provider, expires: expires}
}

// EnableURLCache reuses a signed URL for ttl, capped at half the presign expiry
// so a cached URL always has time left when handed out.
func (s *StorageService) EnableURLCache(ttl time.Duration) {
	if ttl <= 0 {
		s.urls = nil
		return
	}
	if limit := s.expires / 2; ttl > limit {
		ttl = limit
	}
	s.urls = cache.NewTTL[string, string](ttl)
}

// PurgeURLCache drops expired signed URLs and returns how many were removed.
func (s *StorageService) PurgeURLCache() int {
	if s.urls == nil {
		return 0
	}
	return s.urls.Purge()
}

// PresignedURL fails with PRESIGNED_URL_GENERATION_FAILED for blank keys and provider errors.
func (s *StorageService) PresignedURL(ctx context.Context, imageKey string) (string, error) {
	if strings.TrimSpace(imageKey) == "" {
		err := errors.New("empty image key")
		metrics.ObservePresign(err)
		return "", apperr.Wrap(apperr.PresignedURLGenerationFailed, err)
	}

	if s.urls != nil {
		if url, ok := s.urls.Get(imageKey); ok {
			return url, nil
		}
	}

	url, err := s.provider.GetSignedURL(ctx, imageKey, s.expires)
	metrics.ObservePresign(err)
	if err != nil {
		zap.L().Warn("presign image failed", zap.String("key", imageKey), zap.Error(err))
		return "", apperr.Wrap(apperr.PresignedURLGenerationFailed, err)
	}
	if s.urls != nil {
		s.urls.Set(imageKey, url)
	}
	return url, nil
}

// presignAll keeps key order. The first failure aborts the batch.
func presignAll(ctx context.Context, storage ImageStorage, keys []string) ([]string, error) {
	urls := make([]string, 0, len(keys))
	for _, key := range keys {
		url, err := storage.PresignedURL(ctx, key)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// ==================== S3 ====================

type S3Storage struct {
	presigner *s3.PresignClient
	bucket    string
}

func NewS3Storage(cfg *StorageConfig) (*S3Storage, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("s3 storage requires a bucket")
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	}
	awsCfg, err := config.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Storage{
		presigner: s3.NewPresignClient(client),
		bucket:    cfg.Bucket,
	}, nil
}

func (s *S3Storage) GetSignedURL(ctx context.Context, key string, expires time.Duration) (string, error) {
	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(strings.TrimPrefix(key, "/")),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

// ==================== Local ====================

// LocalStorage serves keys from a static base URL without signing. Development only.
type LocalStorage struct {
	baseURL string
}

func NewLocalStorage(cfg *StorageConfig) *LocalStorage {
	return &LocalStorage{baseURL: strings.TrimRight(cfg.LocalBaseURL, "/")}
}

func (s *LocalStorage) GetSignedURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return s.baseURL + "/" + strings.TrimPrefix(key, "/"), nil
}
