package v1

import (
	"github.com/greenpoint/backend/internal/service"
	"github.com/greenpoint/backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// @title Green Point API
// @version 1.0
// @description Collection point registration API

// @BasePath /api/v1

// @securityDefinitions.apikey AdminAuth
// @in header
// @name Authorization

type Handler struct {
	services     *service.Services
	tokenManager auth.TokenManager
}

func NewHandler(
	services *service.Services,
	tokenManager auth.TokenManager,
) *Handler {
	return &Handler{
		services:     services,
		tokenManager: tokenManager,
	}
}

func (h *Handler) Init(api *gin.RouterGroup) {
	v1 := api.Group("v1")

	h.initItemsRoutes(v1)
	h.initPointsRoutes(v1)
	h.initRegionsRoutes(v1)
	h.initAdminRoutes(v1)
}
