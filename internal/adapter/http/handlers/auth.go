package handlers

import (
	"net/http"

	"projecthub/internal/adapter/http/dto"
	"projecthub/internal/adapter/http/mapper"
	"projecthub/internal/core/domain"
	"projecthub/internal/core/ports"
	"projecthub/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidPayload)
		return
	}

	user, err := h.authService.Register(c.Request.Context(), domain.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err, apierrors.MsgFailRegister)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToUserItem(user))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidPayload)
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, apierrors.MsgFailLogin)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, User: mapper.ToUserItem(user)})
}

func (h *AuthHandler) Profile(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}

	user, err := h.authService.Profile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, apierrors.MsgFailProfile, zap.String("user_id", string(userID)))
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItem(user))
}
