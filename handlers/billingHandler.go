package handlers

import (
	"net/http"

	"github.com/BSIT-Sanchez/LGC/middlewares"
	"github.com/BSIT-Sanchez/LGC/models"
	"github.com/BSIT-Sanchez/LGC/services"
	"github.com/BSIT-Sanchez/LGC/utils"
	"github.com/gin-gonic/gin"
)

type BillingHandler struct {
	service *services.BillingService
}

func NewBillingHandler(service *services.BillingService) *BillingHandler {
	return &BillingHandler{service: service}
}

func (h *BillingHandler) CreateBilling(c *gin.Context) {
	var input models.BillingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		middlewares.RespondError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}
	if err := utils.ValidateBillingInput(input); err != nil {
		middlewares.RespondError(c, err.Error(), http.StatusBadRequest, err)
		return
	}

	billing, err := h.service.Create(c.Request.Context(), &input)
	if err != nil {
		if err.Error() == "patient not found" {
			middlewares.RespondError(c, "Patient not found", http.StatusNotFound, nil)
			return
		}
		middlewares.RespondError(c, "Failed to create invoice", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondSuccess(c, http.StatusCreated, billing)
}

func (h *BillingHandler) GetBillingByID(c *gin.Context) {
	id := c.Param("billing_id")
	billing, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		middlewares.RespondError(c, "Failed to get invoice", http.StatusInternalServerError, err)
		return
	}
	if billing == nil {
		middlewares.RespondError(c, "Invoice not found", http.StatusNotFound, nil)
		return
	}
	middlewares.RespondSuccess(c, http.StatusOK, billing)
}

func (h *BillingHandler) GetAllBillings(c *gin.Context) {
	billings, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		middlewares.RespondError(c, "Failed to get invoices", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondSuccess(c, http.StatusOK, billings)
}

func (h *BillingHandler) UpdateBilling(c *gin.Context) {
	id := c.Param("billing_id")
	var input models.BillingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		middlewares.RespondError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}
	if err := utils.ValidateBillingInput(input); err != nil {
		middlewares.RespondError(c, err.Error(), http.StatusBadRequest, err)
		return
	}

	billing, err := h.service.Update(c.Request.Context(), id, &input)
	if err != nil {
		if err.Error() == "billing not found" {
			middlewares.RespondError(c, "Invoice not found", http.StatusNotFound, nil)
			return
		}
		middlewares.RespondError(c, "Failed to update invoice", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondSuccess(c, http.StatusOK, billing)
}

func (h *BillingHandler) DeleteBilling(c *gin.Context) {
	id := c.Param("billing_id")
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		middlewares.RespondError(c, "Failed to delete invoice", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondSuccess(c, http.StatusOK, gin.H{"message": "Invoice deleted"})
}
