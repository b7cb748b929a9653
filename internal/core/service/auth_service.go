package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/dogwalk/dogwalk-api/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

// Credentials implements the credential subsystem: slow salted password
// hashing and signed, time-limited bearer tokens whose subject is the
// account ID.
type Credentials struct {
	jwtSecret string
	tokenTTL  time.Duration
}

func NewCredentials(jwtSecret string, tokenTTL time.Duration) *Credentials {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &Credentials{jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Hash derives a bcrypt hash from the plaintext password.
func (c *Credentials) Hash(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify reports whether password matches hash.
func (c *Credentials) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Issue signs a bearer token for the account.
func (c *Credentials) Issue(accountID string) (string, error) {
	claims := jwt.MapClaims{
		"sub": accountID,
		"exp": time.Now().Add(c.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(c.jwtSecret))
}

// VerifyToken parses and validates a bearer token, returning the account ID
// it was issued for.
func (c *Credentials) VerifyToken(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(c.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return "", domain.ErrInvalidCredentials
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", domain.ErrInvalidCredentials
	}
	return sub, nil
}
