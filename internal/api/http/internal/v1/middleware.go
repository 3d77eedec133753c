package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/greenpoint/backend/pkg/auth"
	"github.com/greenpoint/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const (
	authorizationHeader = "Authorization"
	adminCtx            = "adminSubject"
)

func (h *Handler) adminIdentityMiddleware(c *gin.Context) {
	token, err := parseAuthHeader(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, getErrorStruct(UnknownErrorCode))
		return
	}

	claims, err := auth.RequireAdmin(h.tokenManager, token)
	if err != nil {
		if !errors.Is(err, jwt.ErrTokenExpired) && !errors.Is(err, auth.ErrNotAdmin) {
			logger.Error("parse admin token failed", zap.Error(err))
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, getErrorStruct(UnknownErrorCode))
		return
	}

	c.Set(adminCtx, claims.Subject)
}

func parseAuthHeader(c *gin.Context) (string, error) {
	header := c.GetHeader(authorizationHeader)
	if header == "" {
		return "", errors.New("empty auth header")
	}

	headerParts := strings.Split(header, " ")
	if len(headerParts) != 2 || headerParts[0] != "Bearer" {
		return "", errors.New("invalid auth header")
	}

	if len(headerParts[1]) == 0 {
		return "", errors.New("token is empty")
	}

	return headerParts[1], nil
}
