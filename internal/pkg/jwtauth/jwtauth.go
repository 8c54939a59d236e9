package jwtauth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

const issuer = "recipes"

type Claims struct {
	jwt.StandardClaims
	Email string `json:"email"`
}

// UserID returns the subject of the token as a user id.
func (c Claims) UserID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}

	return id, nil
}

// GetToken signs an HS256 token for the user. tokenID becomes the jti claim.
// A zero ttl leaves out the exp claim, so the lifetime is up to whoever stores
// the token.
func GetToken(userID int64, email, tokenID string, ttl time.Duration, secret string) (string, error) {
	now := time.Now()

	claims := Claims{
		StandardClaims: jwt.StandardClaims{ //nolint:exhaustruct
			Id:       tokenID,
			Subject:  strconv.FormatInt(userID, 10),
			Issuer:   issuer,
			IssuedAt: now.Unix(),
		},
		Email: email,
	}

	if ttl != 0 {
		claims.ExpiresAt = now.Add(ttl).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign token error: %w", err)
	}

	return signed, nil
}

func ParseToken(tokenString, secret string) (Claims, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method %v", ErrInvalidToken, t.Header["alg"])
		}

		return []byte(secret), nil
	})
	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return Claims{}, ErrExpiredToken
		}

		return Claims{}, fmt.Errorf("%w: %s", ErrInvalidToken, err.Error())
	}

	if !token.Valid || claims.Issuer != issuer {
		return Claims{}, ErrInvalidToken
	}

	return claims, nil
}
