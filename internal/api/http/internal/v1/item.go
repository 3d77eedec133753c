package v1

import (
	"net/http"

	"github.com/greenpoint/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handler) initItemsRoutes(api *gin.RouterGroup) {
	items := api.Group("/items")
	items.GET("", h.getItems)
}

type itemResponse struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
}

// @Summary Get Items
// @Tags Items
// @Description Catalog of collectable items offered on the registration form
// @ModuleID getItems
// @Accept  json
// @Produce  json
// @Success 200 {object} []itemResponse
// @Failure 500 {object} ErrorStruct
// @Router /items [get]
func (h *Handler) getItems(c *gin.Context) {
	items, err := h.services.Items.GetAll(c.Request.Context())
	if err != nil {
		logger.Error("get items failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	response := make([]itemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, itemResponse{
			ID:       item.ID,
			Title:    item.Title,
			ImageURL: h.services.Items.ImageURL(item),
		})
	}

	c.JSON(http.StatusOK, response)
}
