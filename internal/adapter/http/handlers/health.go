package handlers

import (
	"context"
	"net/http"
	"os"
	"time"

	"projecthub/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	StatusOk           = "ok"
	StatusDown         = "down"
	healthStoreTimeout = 2 * time.Second
)

// StorePinger reports whether the configured store answers.
type StorePinger func(ctx context.Context) error

type HealthBasic struct {
	AppName           string `json:"app_name"`
	AppVersion        string `json:"app_version"`
	CurrentSystemTime string `json:"current_system_time"`
	Message           string `json:"message"`
}

type HealthServices struct {
	Store string `json:"store"`
}

type HealthAdvanced struct {
	AppName           string         `json:"app_name"`
	AppVersion        string         `json:"app_version"`
	CurrentSystemTime string         `json:"current_system_time"`
	Language          string         `json:"language"`
	StoreDriver       string         `json:"store_driver"`
	Status            HealthServices `json:"status"`
}

type HealthHandler struct {
	storeDriver string
	ping        StorePinger
}

func NewHealthHandler(storeDriver string, ping StorePinger) *HealthHandler {
	return &HealthHandler{storeDriver: storeDriver, ping: ping}
}

func (h *HealthHandler) CheckHealth(c *gin.Context) {
	ctx := c.Request.Context()
	statusCode := http.StatusOK
	message := StatusOk

	if !h.checkConnectionToStore(ctx) {
		statusCode = http.StatusInternalServerError
		message = StatusDown
	}

	c.JSON(statusCode, HealthBasic{
		AppName:           os.Getenv("APP_NAME"),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Message:           message,
	})
}

func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	ctx := c.Request.Context()

	storeStatus := StatusDown
	if h.checkConnectionToStore(ctx) {
		storeStatus = StatusOk
	}

	c.JSON(http.StatusOK, HealthAdvanced{
		AppName:           os.Getenv("APP_NAME"),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Language:          middleware.GetLang(c),
		StoreDriver:       h.storeDriver,
		Status: HealthServices{
			Store: storeStatus,
		},
	})
}

func (h *HealthHandler) checkConnectionToStore(ctx context.Context) bool {
	if h.ping == nil {
		return false
	}
	// Avoid hanging health checks if the store stalls.
	timeoutCtx, cancel := context.WithTimeout(ctx, healthStoreTimeout)
	defer cancel()
	return h.ping(timeoutCtx) == nil
}

func getAppVersion() string {
	version := os.Getenv("APP_VERSION")
	if version == "" {
		return "dev"
	}
	return version
}
