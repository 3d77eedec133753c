package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/greenpoint/backend/internal/domain"
	"github.com/greenpoint/backend/internal/service"
	"github.com/greenpoint/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (h *Handler) initPointsRoutes(api *gin.RouterGroup) {
	points := api.Group("/points")
	{
		points.POST("", h.createPoint)
		points.GET("/:id", h.getPointByID)
	}
}

type createPointResponse struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
}

type pointResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Whatsapp  string  `json:"whatsapp"`
	UF        string  `json:"uf"`
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Items     []int   `json:"items"`
	CreatedAt string  `json:"created_at"`
}

// @Summary Create Point
// @Tags Points
// @Description Register a collection point
// @ModuleID createPoint
// @Accept  json
// @Produce  json
// @Param input body domain.PointPayload true "Collection point"
// @Success 201 {object} createPointResponse
// @Failure 400 {object} ValidationErrorStruct
// @Failure 422 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /points [post]
func (h *Handler) createPoint(c *gin.Context) {
	var req domain.PointPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	point, err := h.services.Points.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownItem) {
			errorResponse(c, http.StatusUnprocessableEntity, PointUnknownItemCode)
			return
		}
		logger.Error("register point failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	c.JSON(http.StatusCreated, createPointResponse{
		ID:        point.ID.String(),
		CreatedAt: point.CreatedAt.Format(time.RFC3339),
	})
}

// @Summary Get Point By ID
// @Tags Points
// @Description Get a registered collection point
// @ModuleID getPointByID
// @Accept  json
// @Produce  json
// @Param id path string true "Point ID (UUID)"
// @Success 200 {object} pointResponse
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /points/{id} [get]
func (h *Handler) getPointByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errorResponse(c, http.StatusBadRequest, UnknownErrorCode)
		return
	}

	point, err := h.services.Points.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPointNotFound) {
			errorResponse(c, http.StatusNotFound, PointNotFoundCode)
			return
		}
		logger.Error("get point failed", zap.Error(err), zap.String("id", id.String()))
		internalErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, pointResponse{
		ID:        point.ID.String(),
		Name:      point.Name,
		Email:     point.Email,
		Whatsapp:  point.Whatsapp,
		UF:        point.UF,
		City:      point.City,
		Latitude:  point.Latitude,
		Longitude: point.Longitude,
		Items:     point.Items,
		CreatedAt: point.CreatedAt.Format(time.RFC3339),
	})
}
