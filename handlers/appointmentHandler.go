package handlers

import (
	"net/http"

	"github.com/BSIT-Sanchez/LGC/middlewares"
	"github.com/BSIT-Sanchez/LGC/models"
	"github.com/BSIT-Sanchez/LGC/services"
	"github.com/BSIT-Sanchez/LGC/utils"
	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	service *services.AppointmentService
}

func NewAppointmentHandler(service *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var input models.AppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		middlewares.RespondError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}
	if err := utils.ValidateAppointmentInput(input); err != nil {
		middlewares.RespondError(c, err.Error(), http.StatusBadRequest, err)
		return
	}

	appointment, err := h.service.Create(c.Request.Context(), &input)
	if err != nil {
		if err.Error() == "patient not found" {
			middlewares.RespondError(c, "Patient not found", http.StatusNotFound, nil)
			return
		}
		middlewares.RespondError(c, "Failed to create appointment", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondSuccess(c, http.StatusCreated, appointment)
}

func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	id := c.Param("appointment_id")
	appointment, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		middlewares.RespondError(c, "Failed to get appointment", http.StatusInternalServerError, err)
		return
	}
	if appointment == nil {
		middlewares.RespondError(c, "Appointment not found", http.StatusNotFound, nil)
		return
	}
	middlewares.RespondSuccess(c, http.StatusOK, appointment)
}

func (h *AppointmentHandler) GetAllAppointments(c *gin.Context) {
	appointments, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		middlewares.RespondError(c, "Failed to get appointments", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondSuccess(c, http.StatusOK, appointments)
}

func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	id := c.Param("appointment_id")
	var input models.AppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		middlewares.RespondError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}
	if err := utils.ValidateAppointmentInput(input); err != nil {
		middlewares.RespondError(c, err.Error(), http.StatusBadRequest, err)
		return
	}

	appointment, err := h.service.Update(c.Request.Context(), id, &input)
	if err != nil {
		if err.Error() == "appointment not found" {
			middlewares.RespondError(c, "Appointment not found", http.StatusNotFound, nil)
			return
		}
		middlewares.RespondError(c, "Failed to update appointment", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondSuccess(c, http.StatusOK, appointment)
}

func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	id := c.Param("appointment_id")
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		middlewares.RespondError(c, "Failed to delete appointment", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondSuccess(c, http.StatusOK, gin.H{"message": "Appointment deleted"})
}
