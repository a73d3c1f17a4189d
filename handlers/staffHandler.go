package handlers

import (
	"net/http"

	"github.com/BSIT-Sanchez/LGC/middlewares"
	"github.com/BSIT-Sanchez/LGC/models"
	"github.com/BSIT-Sanchez/LGC/services"
	"github.com/BSIT-Sanchez/LGC/utils"
	"github.com/gin-gonic/gin"
)

type StaffHandler struct {
	service *services.StaffService
}

func NewStaffHandler(service *services.StaffService) *StaffHandler {
	return &StaffHandler{service: service}
}

func (h *StaffHandler) CreateStaff(c *gin.Context) {
	var input models.StaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		middlewares.RespondError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}
	if err := utils.ValidateStaffInput(input); err != nil {
		middlewares.RespondError(c, err.Error(), http.StatusBadRequest, err)
		return
	}

	staff, err := h.service.Create(c.Request.Context(), &input)
	if err != nil {
		middlewares.RespondError(c, "Failed to create staff member", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondSuccess(c, http.StatusCreated, staff)
}

func (h *StaffHandler) GetStaffByID(c *gin.Context) {
	id := c.Param("staff_id")
	staff, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		middlewares.RespondError(c, "Failed to get staff member", http.StatusInternalServerError, err)
		return
	}
	if staff == nil {
		middlewares.RespondError(c, "Staff member not found", http.StatusNotFound, nil)
		return
	}
	middlewares.RespondSuccess(c, http.StatusOK, staff)
}

func (h *StaffHandler) GetAllStaff(c *gin.Context) {
	staff, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		middlewares.RespondError(c, "Failed to get staff", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondSuccess(c, http.StatusOK, staff)
}

func (h *StaffHandler) UpdateStaff(c *gin.Context) {
	id := c.Param("staff_id")
	var input models.StaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		middlewares.RespondError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}
	if err := utils.ValidateStaffInput(input); err != nil {
		middlewares.RespondError(c, err.Error(), http.StatusBadRequest, err)
		return
	}

	staff, err := h.service.Update(c.Request.Context(), id, &input)
	if err != nil {
		if err.Error() == "staff not found" {
			middlewares.RespondError(c, "Staff member not found", http.StatusNotFound, nil)
			return
		}
		middlewares.RespondError(c, "Failed to update staff member", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondSuccess(c, http.StatusOK, staff)
}

func (h *StaffHandler) DeleteStaff(c *gin.Context) {
	id := c.Param("staff_id")
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		middlewares.RespondError(c, "Failed to delete staff member", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondSuccess(c, http.StatusOK, gin.H{"message": "Staff member deleted"})
}
