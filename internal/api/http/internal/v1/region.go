package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/greenpoint/backend/internal/domain"
	"github.com/greenpoint/backend/internal/service"
	"github.com/greenpoint/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handler) initRegionsRoutes(api *gin.RouterGroup) {
	regions := api.Group("/regions")
	{
		regions.GET("", h.getRegions)
		regions.GET("/:uf/cities", h.getCities)
	}
}

// @Summary Get Regions
// @Tags Regions
// @Description UF codes from IBGE, cached
// @ModuleID getRegions
// @Produce  json
// @Success 200 {object} []string
// @Failure 502 {object} ErrorStruct
// @Router /regions [get]
func (h *Handler) getRegions(c *gin.Context) {
	regions, err := h.services.Regions.ListRegions(c.Request.Context())
	if err != nil {
		logger.Error("list regions failed", zap.Error(err))
		errorResponse(c, http.StatusBadGateway, UnknownErrorCode)
		return
	}
	c.JSON(http.StatusOK, regions)
}

// @Summary Get Cities
// @Tags Regions
// @Description City names of a UF from IBGE, cached
// @ModuleID getCities
// @Produce  json
// @Param uf path string true "UF code"
// @Success 200 {object} []string
// @Failure 404 {object} ErrorStruct
// @Failure 502 {object} ErrorStruct
// @Router /regions/{uf}/cities [get]
func (h *Handler) getCities(c *gin.Context) {
	uf := domain.RegionCode(strings.ToUpper(c.Param("uf")))

	cities, err := h.services.Regions.ListCities(c.Request.Context(), uf)
	if err != nil {
		if errors.Is(err, service.ErrRegionNotFound) {
			errorResponse(c, http.StatusNotFound, RegionNotFoundCode)
			return
		}
		logger.Error("list cities failed", zap.Error(err), zap.String("uf", string(uf)))
		errorResponse(c, http.StatusBadGateway, UnknownErrorCode)
		return
	}
	c.JSON(http.StatusOK, cities)
}
