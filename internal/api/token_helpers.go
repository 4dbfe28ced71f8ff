package api

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/ita-growin/growin/internal/models"
)

const defaultAccessTokenTTL = 30 * time.Minute

func (handler *Handler) buildAccessToken(user *models.User) (string, error) {
	ttl := handler.accessTokenTTL
	if ttl <= 0 {
		ttl = defaultAccessTokenTTL
	}
	now := time.Now()

	claims := authClaims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(handler.secretKey)
}
