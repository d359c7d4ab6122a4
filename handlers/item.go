package handlers

import (
	"errors"
	"net/http"

	"teerenta/middleware"
	"teerenta/models"
	"teerenta/services/item"
	"teerenta/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ItemHandler exposes the bookable-item catalogue over HTTP.
type ItemHandler struct {
	Service item.ItemService
	Logger  *zap.Logger
}

func NewItemHandler(svc item.ItemService, logger *zap.Logger) *ItemHandler {
	return &ItemHandler{Service: svc, Logger: logger}
}

// List handles GET /api/<kind>.
func (h *ItemHandler) List(kind models.ItemKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := h.Service.ListActive(kind)
		if err != nil {
			h.respondError(c, err)
			return
		}
		if len(items) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "No " + string(kind) + " found"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// Upcoming handles GET /api/<kind>/upcoming.
func (h *ItemHandler) Upcoming(kind models.ItemKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := h.Service.ListUpcoming(kind)
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// Mine handles GET /api/<kind>/my.
func (h *ItemHandler) Mine(kind models.ItemKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := h.Service.ListByCreator(kind, middleware.TouristID(c))
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// Get handles GET /api/<kind>/one/:id.
func (h *ItemHandler) Get(kind models.ItemKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		it, err := h.Service.Get(kind, c.Param("id"))
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, it)
	}
}

// Create handles POST /api/<kind>.
func (h *ItemHandler) Create(kind models.ItemKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var it models.BookableItem
		if err := c.ShouldBindJSON(&it); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		it.Kind = kind
		it.CreatedBy = middleware.TouristID(c)
		if err := h.Service.Create(&it); err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Created successfully", "item": it})
	}
}

// Update handles PUT /api/<kind>/:id.
func (h *ItemHandler) Update(kind models.ItemKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var it models.BookableItem
		if err := c.ShouldBindJSON(&it); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		it.Kind = kind
		it.ID = c.Param("id")
		if err := h.Service.Update(&it); err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Updated successfully", "item": it})
	}
}

// Deactivate handles DELETE /api/<kind>/:id. Items are soft-deleted so
// existing bookings keep pointing at a real document.
func (h *ItemHandler) Deactivate(kind models.ItemKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h.Service.Deactivate(kind, c.Param("id")); err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Deactivated successfully"})
	}
}

func (h *ItemHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, item.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "Not found or inactive", err.Error())
	case errors.Is(err, item.ErrInvalidKind):
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
	default:
		h.Logger.Error("item request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
	}
}
