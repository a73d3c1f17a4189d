package handlers

import (
	"net/http"

	"github.com/BSIT-Sanchez/LGC/middlewares"
	"github.com/BSIT-Sanchez/LGC/models"
	"github.com/BSIT-Sanchez/LGC/services"
	"github.com/BSIT-Sanchez/LGC/utils"
	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	service *services.PatientService
}

func NewPatientHandler(service *services.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var input models.PatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		middlewares.RespondError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}
	if err := utils.ValidatePatientInput(input); err != nil {
		middlewares.RespondError(c, err.Error(), http.StatusBadRequest, err)
		return
	}

	patient, err := h.service.Create(c.Request.Context(), &input)
	if err != nil {
		middlewares.RespondError(c, "Failed to create patient", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondSuccess(c, http.StatusCreated, patient)
}

func (h *PatientHandler) GetPatientByID(c *gin.Context) {
	id := c.Param("patient_id")
	patient, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		middlewares.RespondError(c, "Failed to get patient", http.StatusInternalServerError, err)
		return
	}
	if patient == nil {
		middlewares.RespondError(c, "Patient not found", http.StatusNotFound, nil)
		return
	}
	middlewares.RespondSuccess(c, http.StatusOK, patient)
}

func (h *PatientHandler) GetAllPatients(c *gin.Context) {
	patients, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		middlewares.RespondError(c, "Failed to get patients", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondSuccess(c, http.StatusOK, patients)
}

func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	id := c.Param("patient_id")
	var input models.PatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		middlewares.RespondError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}
	if err := utils.ValidatePatientInput(input); err != nil {
		middlewares.RespondError(c, err.Error(), http.StatusBadRequest, err)
		return
	}

	patient, err := h.service.Update(c.Request.Context(), id, &input)
	if err != nil {
		if err.Error() == "patient not found" {
			middlewares.RespondError(c, "Patient not found", http.StatusNotFound, nil)
			return
		}
		middlewares.RespondError(c, "Failed to update patient", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondSuccess(c, http.StatusOK, patient)
}

// SetPatientStatus toggles a patient between Active and Inactive.
func (h *PatientHandler) SetPatientStatus(c *gin.Context) {
	id := c.Param("patient_id")
	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		middlewares.RespondError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}
	if input.Status != "Active" && input.Status != "Inactive" {
		middlewares.RespondError(c, "Status must be Active or Inactive", http.StatusBadRequest, nil)
		return
	}

	if err := h.service.SetStatus(c.Request.Context(), id, input.Status); err != nil {
		if err.Error() == "patient not found" {
			middlewares.RespondError(c, "Patient not found", http.StatusNotFound, nil)
			return
		}
		middlewares.RespondError(c, "Failed to update patient status", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondSuccess(c, http.StatusOK, gin.H{"status": input.Status})
}

func (h *PatientHandler) DeletePatient(c *gin.Context) {
	id := c.Param("patient_id")
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		middlewares.RespondError(c, "Failed to delete patient", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondSuccess(c, http.StatusOK, gin.H{"message": "Patient deleted"})
}
