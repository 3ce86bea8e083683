package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/opsdemo/items-api/internal/domain/item"
	"github.com/opsdemo/items-api/internal/infrastructure/monitoring"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	store *item.Store
}

// NewHandlers creates a new handler set
func NewHandlers(store *item.Store) *Handlers {
	return &Handlers{store: store}
}

// createItemRequest is the POST /items payload.
type createItemRequest struct {
	Name string `json:"name" binding:"required"`
}

// Root handles the service banner
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":    "DevOps demo API",
		"request_id": monitoring.RequestID(c),
	})
}

// Health handles health checks
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"request_id": monitoring.RequestID(c),
	})
}

// ListItems returns all stored items in insertion order
func (h *Handlers) ListItems(c *gin.Context) {
	items := h.store.List()

	c.JSON(http.StatusOK, gin.H{
		"items":      items,
		"count":      len(items),
		"request_id": monitoring.RequestID(c),
	})
}

// CreateItem validates the payload and appends a new item
func (h *Handlers) CreateItem(c *gin.Context) {
	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, validationDetail(err))
		return
	}

	created, err := h.store.Add(req.Name)
	if err != nil {
		// Only ErrEmptyName reaches here; binding already rejects it, but
		// the store enforces the invariant independently.
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"detail": []gin.H{{"field": "name", "message": err.Error()}},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"item":       created,
		"request_id": monitoring.RequestID(c),
	})
}

// validationDetail maps binding failures to a 422 body with field-level
// detail.
func validationDetail(err error) gin.H {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		detail := make([]gin.H, 0, len(verrs))
		for _, fe := range verrs {
			detail = append(detail, gin.H{
				"field":   fe.Field(),
				"message": "failed on the '" + fe.Tag() + "' tag",
			})
		}
		return gin.H{"detail": detail}
	}

	// Malformed JSON and type mismatches carry no field breakdown.
	return gin.H{"detail": []gin.H{{"message": err.Error()}}}
}
