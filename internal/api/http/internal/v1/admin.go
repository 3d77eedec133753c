package v1

import (
	"errors"
	"net/http"

	"github.com/greenpoint/backend/internal/domain"
	"github.com/greenpoint/backend/internal/service"
	"github.com/greenpoint/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handler) initAdminRoutes(api *gin.RouterGroup) {
	admin := api.Group("/admin", h.adminIdentityMiddleware)
	admin.POST("/items", h.createItem)
}

type createItemRequest struct {
	ID    int    `json:"id" binding:"required,gt=0"`
	Title string `json:"title" binding:"required,max=100"`
	Image string `json:"image" binding:"required,max=255"`
}

// @Summary Create Item
// @Security AdminAuth
// @Tags Admin
// @Description Add a collectable item to the catalog
// @ModuleID createItem
// @Accept  json
// @Produce  json
// @Param input body createItemRequest true "Item"
// @Success 201 {object} itemResponse
// @Failure 400 {object} ValidationErrorStruct
// @Failure 401 {object} ErrorStruct
// @Failure 409 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /admin/items [post]
func (h *Handler) createItem(c *gin.Context) {
	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	item := &domain.Item{ID: req.ID, Title: req.Title, Image: req.Image}
	if err := h.services.Items.Create(c.Request.Context(), item); err != nil {
		if errors.Is(err, service.ErrItemAlreadyExist) {
			errorResponse(c, http.StatusConflict, ItemAlreadyExistsCode)
			return
		}
		logger.Error("create item failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	c.JSON(http.StatusCreated, itemResponse{
		ID:       item.ID,
		Title:    item.Title,
		ImageURL: h.services.Items.ImageURL(*item),
	})
}
