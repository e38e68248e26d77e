package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var ErrInvalidToken = errors.New("invalid token")

// TokenService signs caller-supplied identity payloads with HS256.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs payload with iat/exp claims added. Caller values for those keys
// are overwritten.
func (s *TokenService) Issue(payload map[string]interface{}) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{}
	for k, v := range payload {
		claims[k] = v
	}
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(s.ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify returns the payload the token was issued for.
func (s *TokenService) Verify(tokenString string) (map[string]interface{}, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, s.Keyfunc)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if err := s.CheckClaims(claims); err != nil {
		return nil, err
	}

	payload := make(map[string]interface{}, len(claims))
	for k, v := range claims {
		if k == "iat" || k == "exp" {
			continue
		}
		payload[k] = v
	}
	return payload, nil
}

// Keyfunc accepts HMAC-signed tokens only.
func (s *TokenService) Keyfunc(t *jwt.Token) (interface{}, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
	}
	return s.secret, nil
}

// CheckClaims rejects tokens that never expire. jwt only validates exp when
// the claim is present.
func (s *TokenService) CheckClaims(claims jwt.MapClaims) error {
	if _, ok := claims["exp"]; !ok {
		return ErrInvalidToken
	}
	return nil
}
