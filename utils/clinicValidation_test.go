package utils

import (
	"testing"

	"github.com/BSIT-Sanchez/LGC/models"
	"github.com/stretchr/testify/assert"
)

func validPatientInput() models.PatientInput {
	return models.PatientInput{
		FullName:    "Maria Reyes",
		DateOfBirth: "1995-04-12",
		Gender:      "Female",
		Contact:     "0917-555-0101",
		Service:     "Prenatal Checkup",
		Address:     "Quezon City",
	}
}

func TestValidatePatientInput(t *testing.T) {
	assert.NoError(t, ValidatePatientInput(validPatientInput()))

	badDate := validPatientInput()
	badDate.DateOfBirth = "12/04/1995"
	assert.Error(t, ValidatePatientInput(badDate))

	badService := validPatientInput()
	badService.Service = "Dental Cleaning"
	assert.Error(t, ValidatePatientInput(badService))

	badGender := validPatientInput()
	badGender.Gender = "unknown"
	assert.Error(t, ValidatePatientInput(badGender))

	missingName := validPatientInput()
	missingName.FullName = ""
	assert.Error(t, ValidatePatientInput(missingName))
}

func TestValidateAppointmentInput(t *testing.T) {
	valid := models.AppointmentInput{
		PatientID: "abc-123",
		Doctor:    "Dr. Collado",
		Date:      "2026-09-01",
		Type:      "Ultrasound",
	}
	assert.NoError(t, ValidateAppointmentInput(valid))

	// Status is optional on create, validated when present.
	withStatus := valid
	withStatus.Status = "Completed"
	assert.NoError(t, ValidateAppointmentInput(withStatus))

	badStatus := valid
	badStatus.Status = "Done"
	assert.Error(t, ValidateAppointmentInput(badStatus))

	badDoctor := valid
	badDoctor.Doctor = "Dr. Nobody"
	assert.Error(t, ValidateAppointmentInput(badDoctor))

	badType := valid
	badType.Type = "Immunization"
	assert.Error(t, ValidateAppointmentInput(badType), "appointment types are narrower than clinic services")
}

func TestValidateBillingInput(t *testing.T) {
	valid := models.BillingInput{
		PatientID: "abc-123",
		Service:   "Family Planning",
		Status:    "Unpaid",
	}
	assert.NoError(t, ValidateBillingInput(valid))

	badStatus := valid
	badStatus.Status = "Pending"
	assert.Error(t, ValidateBillingInput(badStatus))

	missingPatient := valid
	missingPatient.PatientID = ""
	assert.Error(t, ValidateBillingInput(missingPatient))
}

func TestValidateStaffInput(t *testing.T) {
	valid := models.StaffInput{
		FullName:   "Ana Cruz",
		Role:       "Midwife",
		Department: "Maternity",
		Phone:      "0917-555-0199",
		Status:     "Active",
	}
	assert.NoError(t, ValidateStaffInput(valid))

	badRole := valid
	badRole.Role = "Janitor"
	assert.Error(t, ValidateStaffInput(badRole))

	badStatus := valid
	badStatus.Status = "Retired"
	assert.Error(t, ValidateStaffInput(badStatus))
}

func TestValidateInventoryInput(t *testing.T) {
	valid := models.InventoryInput{
		Name:     "Gauze Pads",
		Category: "Supplies",
		Stock:    25,
	}
	assert.NoError(t, ValidateInventoryInput(valid))

	zeroStock := valid
	zeroStock.Stock = 0
	assert.NoError(t, ValidateInventoryInput(zeroStock), "zero stock is a valid state")

	badCategory := valid
	badCategory.Category = "Snacks"
	assert.Error(t, ValidateInventoryInput(badCategory))
}
