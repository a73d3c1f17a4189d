package utils

import (
	"errors"
	"time"

	"github.com/BSIT-Sanchez/LGC/models"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Closed vocabularies for the clinic records. These mirror the CHECK
// constraints on the tables.
var (
	ClinicServices         = []interface{}{"Prenatal Checkup", "Family Planning", "Ultrasound", "Immunization"}
	Doctors                = []interface{}{"Dr. Collado", "Dr. Cruz"}
	AppointmentTypes       = []interface{}{"Family Planning", "Prenatal Checkup", "Ultrasound"}
	AppointmentStatuses    = []interface{}{"Scheduled", "Completed", "Cancelled"}
	BillingStatuses        = []interface{}{"Paid", "Partial", "Unpaid"}
	Genders                = []interface{}{"Female", "Male", "Other"}
	StaffRoles             = []interface{}{"Midwife", "Physician", "Reception"}
	InventoryCategories    = []interface{}{"Medicines", "Supplies", "Equipment", "Consumables", "Accessories"}
	ActiveInactiveStatuses = []interface{}{"Active", "Inactive"}
)

// validateDate checks the YYYY-MM-DD format used on all record dates.
func validateDate(value interface{}) error {
	date, _ := value.(string)
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return errors.New("must be a date in YYYY-MM-DD format")
	}
	return nil
}

func ValidatePatientInput(input models.PatientInput) error {
	return validation.ValidateStruct(&input,
		validation.Field(&input.FullName, validation.Required, validation.Length(2, 100)),
		validation.Field(&input.DateOfBirth, validation.Required, validation.By(validateDate)),
		validation.Field(&input.Gender, validation.Required, validation.In(Genders...)),
		validation.Field(&input.Service, validation.Required, validation.In(ClinicServices...)),
	)
}

func ValidateAppointmentInput(input models.AppointmentInput) error {
	return validation.ValidateStruct(&input,
		validation.Field(&input.PatientID, validation.Required),
		validation.Field(&input.Doctor, validation.Required, validation.In(Doctors...)),
		validation.Field(&input.Date, validation.Required, validation.By(validateDate)),
		validation.Field(&input.Type, validation.Required, validation.In(AppointmentTypes...)),
		validation.Field(&input.Status, validation.When(input.Status != "", validation.In(AppointmentStatuses...))),
	)
}

func ValidateBillingInput(input models.BillingInput) error {
	return validation.ValidateStruct(&input,
		validation.Field(&input.PatientID, validation.Required),
		validation.Field(&input.Service, validation.Required, validation.In(ClinicServices...)),
		validation.Field(&input.Status, validation.Required, validation.In(BillingStatuses...)),
	)
}

func ValidateStaffInput(input models.StaffInput) error {
	return validation.ValidateStruct(&input,
		validation.Field(&input.FullName, validation.Required, validation.Length(2, 100)),
		validation.Field(&input.Role, validation.Required, validation.In(StaffRoles...)),
		validation.Field(&input.Department, validation.Required),
		validation.Field(&input.Phone, validation.Required),
		validation.Field(&input.Status, validation.When(input.Status != "", validation.In(ActiveInactiveStatuses...))),
	)
}

func ValidateInventoryInput(input models.InventoryInput) error {
	return validation.ValidateStruct(&input,
		validation.Field(&input.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&input.Category, validation.Required, validation.In(InventoryCategories...)),
		validation.Field(&input.Stock, validation.Min(0)),
	)
}
