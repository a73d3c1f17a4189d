package handlers

import (
	"net/http"

	"github.com/BSIT-Sanchez/LGC/middlewares"
	"github.com/BSIT-Sanchez/LGC/models"
	"github.com/BSIT-Sanchez/LGC/services"
	"github.com/BSIT-Sanchez/LGC/utils"
	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	service *services.InventoryService
}

func NewInventoryHandler(service *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: service}
}

func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var input models.InventoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		middlewares.RespondError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}
	if err := utils.ValidateInventoryInput(input); err != nil {
		middlewares.RespondError(c, err.Error(), http.StatusBadRequest, err)
		return
	}

	item, err := h.service.Create(c.Request.Context(), &input)
	if err != nil {
		middlewares.RespondError(c, "Failed to create inventory item", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondSuccess(c, http.StatusCreated, item)
}

func (h *InventoryHandler) GetItemByID(c *gin.Context) {
	id := c.Param("item_id")
	item, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		middlewares.RespondError(c, "Failed to get inventory item", http.StatusInternalServerError, err)
		return
	}
	if item == nil {
		middlewares.RespondError(c, "Inventory item not found", http.StatusNotFound, nil)
		return
	}
	middlewares.RespondSuccess(c, http.StatusOK, item)
}

func (h *InventoryHandler) GetAllItems(c *gin.Context) {
	items, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		middlewares.RespondError(c, "Failed to get inventory", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondSuccess(c, http.StatusOK, items)
}

func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	id := c.Param("item_id")
	var input models.InventoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		middlewares.RespondError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}
	if err := utils.ValidateInventoryInput(input); err != nil {
		middlewares.RespondError(c, err.Error(), http.StatusBadRequest, err)
		return
	}

	item, err := h.service.Update(c.Request.Context(), id, &input)
	if err != nil {
		if err.Error() == "inventory item not found" {
			middlewares.RespondError(c, "Inventory item not found", http.StatusNotFound, nil)
			return
		}
		middlewares.RespondError(c, "Failed to update inventory item", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondSuccess(c, http.StatusOK, item)
}

func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	id := c.Param("item_id")
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		middlewares.RespondError(c, "Failed to delete inventory item", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondSuccess(c, http.StatusOK, gin.H{"message": "Inventory item deleted"})
}
