package middleware

import (
	"net/http"
	"strings"

	"projecthub/internal/core/domain"
	"projecthub/internal/core/ports"
	"projecthub/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const identityKey = "userID"

// AuthMiddleware resolves the bearer token into the caller identity. Requests
// without a valid token stop here with 401.
func AuthMiddleware(verifier ports.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		token = strings.TrimSpace(token)
		if !ok || token == "" {
			abortUnauthorized(c)
			return
		}

		id, err := verifier.Verify(token)
		if err != nil {
			zap.L().Debug("rejected bearer token", zap.Error(err))
			abortUnauthorized(c)
			return
		}

		c.Set(identityKey, id)
		c.Next()
	}
}

// GetIdentity returns the identity set by AuthMiddleware.
func GetIdentity(c *gin.Context) (domain.UserID, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return "", false
	}
	id, ok := value.(domain.UserID)
	return id, ok && id != ""
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(
		http.StatusUnauthorized,
		apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, GetLang(c)),
	)
}
