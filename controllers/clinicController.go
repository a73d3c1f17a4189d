package controllers

import (
	"github.com/BSIT-Sanchez/LGC/handlers"
	"github.com/gin-gonic/gin"
)

// SetupClinicRoutes registers the CRUD routes for the clinic collections.
func SetupClinicRoutes(router *gin.Engine, patientHandler *handlers.PatientHandler, appointmentHandler *handlers.AppointmentHandler, billingHandler *handlers.BillingHandler, staffHandler *handlers.StaffHandler, inventoryHandler *handlers.InventoryHandler, reportHandler *handlers.ReportHandler) {
	router.POST("/patients", patientHandler.CreatePatient)
	router.GET("/patients/:patient_id", patientHandler.GetPatientByID)
	router.PUT("/patients/:patient_id", patientHandler.UpdatePatient)
	router.PATCH("/patients/:patient_id/status", patientHandler.SetPatientStatus)
	router.DELETE("/patients/:patient_id", patientHandler.DeletePatient)
	router.GET("/patients", patientHandler.GetAllPatients)

	router.POST("/appointments", appointmentHandler.CreateAppointment)
	router.GET("/appointments/:appointment_id", appointmentHandler.GetAppointmentByID)
	router.PUT("/appointments/:appointment_id", appointmentHandler.UpdateAppointment)
	router.DELETE("/appointments/:appointment_id", appointmentHandler.DeleteAppointment)
	router.GET("/appointments", appointmentHandler.GetAllAppointments)

	router.POST("/billing", billingHandler.CreateBilling)
	router.GET("/billing/:billing_id", billingHandler.GetBillingByID)
	router.PUT("/billing/:billing_id", billingHandler.UpdateBilling)
	router.DELETE("/billing/:billing_id", billingHandler.DeleteBilling)
	router.GET("/billing", billingHandler.GetAllBillings)

	router.POST("/staff", staffHandler.CreateStaff)
	router.GET("/staff/:staff_id", staffHandler.GetStaffByID)
	router.PUT("/staff/:staff_id", staffHandler.UpdateStaff)
	router.DELETE("/staff/:staff_id", staffHandler.DeleteStaff)
	router.GET("/staff", staffHandler.GetAllStaff)

	router.POST("/inventory", inventoryHandler.CreateItem)
	router.GET("/inventory/:item_id", inventoryHandler.GetItemByID)
	router.PUT("/inventory/:item_id", inventoryHandler.UpdateItem)
	router.DELETE("/inventory/:item_id", inventoryHandler.DeleteItem)
	router.GET("/inventory", inventoryHandler.GetAllItems)

	router.GET("/dashboard/stats", reportHandler.GetDashboardStats)
	router.GET("/reports", reportHandler.GetDailySummary)
}
