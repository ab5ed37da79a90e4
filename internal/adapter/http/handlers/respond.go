package handlers

import (
	"errors"
	"net/http"

	"projecthub/internal/adapter/http/mapper"
	"projecthub/internal/adapter/http/middleware"
	"projecthub/internal/core/domain"
	"projecthub/internal/core/ports"
	"projecthub/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// respondError maps a service error to its status code. Errors that are not
// domain sentinels are logged and answered with 500 and failMsg.
func respondError(c *gin.Context, err error, failMsg string, fields ...zap.Field) {
	status, msgKey := http.StatusInternalServerError, failMsg
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		status, msgKey = http.StatusBadRequest, apierrors.MsgInvalidPayload
	case errors.Is(err, domain.ErrInvalidCredentials):
		status, msgKey = http.StatusUnauthorized, apierrors.MsgInvalidCredentials
	case errors.Is(err, domain.ErrForbidden):
		status, msgKey = http.StatusForbidden, apierrors.MsgForbidden
	case errors.Is(err, domain.ErrProjectNotFound):
		status, msgKey = http.StatusNotFound, apierrors.MsgProjectNotFound
	case errors.Is(err, domain.ErrTaskNotFound):
		status, msgKey = http.StatusNotFound, apierrors.MsgTaskNotFound
	case errors.Is(err, domain.ErrUserNotFound):
		status, msgKey = http.StatusNotFound, apierrors.MsgUserNotFound
	case errors.Is(err, domain.ErrEmailTaken):
		status, msgKey = http.StatusConflict, apierrors.MsgEmailTaken
	default:
		zap.L().Error(failMsg, append(fields, zap.Error(err))...)
		_ = c.Error(err)
	}

	c.JSON(status, apierrors.CreateError(status, msgKey, middleware.GetLang(c)))
}

// resolveUsers fetches summaries for ids. A failed lookup is logged and the
// response falls back to bare ids.
func resolveUsers(c *gin.Context, directory ports.UserDirectory, ids []domain.UserID) mapper.Users {
	summaries, err := directory.Summaries(c.Request.Context(), ids)
	if err != nil {
		zap.L().Warn("failed to resolve user references", zap.Int("count", len(ids)), zap.Error(err))
		return mapper.Users{}
	}
	return summaries
}

func respondBadRequest(c *gin.Context, msgKey string) {
	c.JSON(
		http.StatusBadRequest,
		apierrors.CreateError(http.StatusBadRequest, msgKey, middleware.GetLang(c)),
	)
}

// pathID reads a UUID path parameter and answers 400 when it is malformed.
func pathID(c *gin.Context, name string, msgKey string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		respondBadRequest(c, msgKey)
		return "", false
	}
	return id, true
}

// identity returns the authenticated caller. Routes are mounted behind
// AuthMiddleware, so a miss means the handler was wired without it.
func identity(c *gin.Context) (domain.UserID, bool) {
	id, ok := middleware.GetIdentity(c)
	if !ok {
		c.AbortWithStatusJSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, middleware.GetLang(c)),
		)
	}
	return id, ok
}
