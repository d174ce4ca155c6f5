package middleware

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"eatda/internal/api/resp"
	"eatda/internal/apperr"
)

// ==================== JWT config ====================

type JWTConfig struct {
	SecretKey       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	Issuer          string
}

func DefaultJWTConfig() *JWTConfig {
	return &JWTConfig{
		SecretKey:       "eatda-secret-key-change-in-production",
		AccessTokenTTL:  2 * time.Hour,
		RefreshTokenTTL: 14 * 24 * time.Hour,
		Issuer:          "eatda",
	}
}

var jwtConfig = DefaultJWTConfig()

func SetJWTConfig(cfg *JWTConfig) {
	jwtConfig = cfg
}

func GetJWTConfig() *JWTConfig {
	return jwtConfig
}

// ==================== Claims ====================

const (
	subjectAccess  = "access"
	subjectRefresh = "refresh"
)

type MemberClaims struct {
	MemberID int64 `json:"member_id"`
	jwt.RegisteredClaims
}

// ==================== Token generation ====================

func GenerateAccessToken(memberID int64) (string, error) {
	return generateToken(memberID, subjectAccess, jwtConfig.AccessTokenTTL)
}

func GenerateRefreshToken(memberID int64) (string, error) {
	return generateToken(memberID, subjectRefresh, jwtConfig.RefreshTokenTTL)
}

func GenerateTokenPair(memberID int64) (accessToken, refreshToken string, err error) {
	accessToken, err = GenerateAccessToken(memberID)
	if err != nil {
		return "", "", err
	}
	refreshToken, err = GenerateRefreshToken(memberID)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

func generateToken(memberID int64, subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &MemberClaims{
		MemberID: memberID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    jwtConfig.Issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtConfig.SecretKey))
}

// ==================== Token parsing ====================

// ParseToken verifies the signature, the expiry and, when configured, the issuer.
func ParseToken(tokenString string) (*MemberClaims, error) {
	var opts []jwt.ParserOption
	if jwtConfig.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(jwtConfig.Issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &MemberClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(jwtConfig.SecretKey), nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*MemberClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// ==================== Gin middleware ====================

const (
	ContextKeyMemberID = "member_id"
	ContextKeyClaims   = "claims"
)

// JWTAuth requires a Bearer access token. Expired tokens answer EXPIRED_TOKEN,
// every other failure UNAUTHORIZED_MEMBER.
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			resp.Abort(c, apperr.UnauthorizedMember)
			return
		}

		claims, err := ParseToken(parts[1])
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				resp.Abort(c, apperr.ExpiredToken)
				return
			}
			resp.Abort(c, apperr.UnauthorizedMember)
			return
		}

		if claims.Subject != subjectAccess || claims.MemberID <= 0 {
			resp.Abort(c, apperr.UnauthorizedMember)
			return
		}

		c.Set(ContextKeyMemberID, claims.MemberID)
		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}

// ==================== Helpers ====================

// GetMemberID returns 0 outside authenticated routes.
func GetMemberID(c *gin.Context) int64 {
	if id, exists := c.Get(ContextKeyMemberID); exists {
		return id.(int64)
	}
	return 0
}
