package models

import (
	"time"
)

// Patient model
type Patient struct {
	ID           string        `gorm:"primaryKey;column:id" json:"id"`
	PatientNo    string        `gorm:"column:patient_no;unique;not null" json:"patientId"`
	FullName     string        `gorm:"column:full_name;not null;index" json:"fullName"`
	DateOfBirth  string        `gorm:"column:date_of_birth;not null" json:"dob"`
	Gender       string        `gorm:"column:gender;check:gender IN ('Female', 'Male', 'Other');not null" json:"gender"`
	Contact      string        `gorm:"column:contact" json:"contact"`
	Service      string        `gorm:"column:service;check:service IN ('Prenatal Checkup', 'Family Planning', 'Ultrasound', 'Immunization');not null" json:"service"`
	Address      string        `gorm:"column:address" json:"address"`
	Notes        string        `gorm:"column:notes" json:"notes"`
	Status       string        `gorm:"column:status;check:status IN ('Active', 'Inactive');not null" json:"status"`
	CreatedAt    time.Time     `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Appointments []Appointment `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	Billings     []Billing     `gorm:"foreignKey:PatientID;references:ID" json:"-"`
}

func (Patient) TableName() string {
	return "patient"
}

// PatientInput is the create/update payload for a patient. The patient number
// and status are assigned by the server, never by the caller.
type PatientInput struct {
	FullName    string `json:"fullName"`
	DateOfBirth string `json:"dob"`
	Gender      string `json:"gender"`
	Contact     string `json:"contact"`
	Service     string `json:"service"`
	Address     string `json:"address"`
	Notes       string `json:"notes"`
}

// Appointment model
type Appointment struct {
	ID        string    `gorm:"primaryKey;column:id" json:"id"`
	PatientID string    `gorm:"column:patient_id;not null;index" json:"patientId"`
	Doctor    string    `gorm:"column:doctor;check:doctor IN ('Dr. Collado', 'Dr. Cruz');not null" json:"doctor"`
	Date      string    `gorm:"column:date;not null;index" json:"date"`
	Type      string    `gorm:"column:type;check:type IN ('Family Planning', 'Prenatal Checkup', 'Ultrasound');not null" json:"type"`
	Status    string    `gorm:"column:status;check:status IN ('Scheduled', 'Completed', 'Cancelled');not null" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Patient   Patient   `gorm:"foreignKey:PatientID;references:ID" json:"patient"`
}

func (Appointment) TableName() string {
	return "appointment"
}

// AppointmentInput is the create/update payload for an appointment. Status is
// server-set on create and may only be changed through an explicit update.
type AppointmentInput struct {
	PatientID string `json:"patient"`
	Doctor    string `json:"doctor"`
	Date      string `json:"date"`
	Type      string `json:"type"`
	Status    string `json:"status"`
}

// Billing model
type Billing struct {
	ID            string    `gorm:"primaryKey;column:id" json:"id"`
	InvoiceNumber string    `gorm:"column:invoice_number;unique;not null" json:"invoiceNumber"`
	PatientID     string    `gorm:"column:patient_id;not null;index" json:"patientId"`
	Service       string    `gorm:"column:service;check:service IN ('Prenatal Checkup', 'Family Planning', 'Ultrasound', 'Immunization');not null" json:"service"`
	Amount        int64     `gorm:"column:amount;check:amount >= 0;not null" json:"amount"`
	Status        string    `gorm:"column:status;check:status IN ('Paid', 'Partial', 'Unpaid');not null" json:"status"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Patient       Patient   `gorm:"foreignKey:PatientID;references:ID" json:"patient"`
}

func (Billing) TableName() string {
	return "billing"
}

// BillingInput is the create/update payload for an invoice. The amount is
// derived from the selected service on the server and is not part of the input.
type BillingInput struct {
	PatientID string `json:"patientId"`
	Service   string `json:"service"`
	Status    string `json:"status"`
}

// Staff model
type Staff struct {
	ID         string    `gorm:"primaryKey;column:id" json:"id"`
	FullName   string    `gorm:"column:full_name;not null;index" json:"fullName"`
	Role       string    `gorm:"column:role;check:role IN ('Midwife', 'Physician', 'Reception');not null" json:"role"`
	Department string    `gorm:"column:department;not null" json:"department"`
	Phone      string    `gorm:"column:phone;not null" json:"phone"`
	Status     string    `gorm:"column:status;check:status IN ('Active', 'Inactive');not null" json:"status"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Staff) TableName() string {
	return "staff"
}

// StaffInput is the create/update payload for a staff member.
type StaffInput struct {
	FullName   string `json:"fullName"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Phone      string `json:"phone"`
	Status     string `json:"status"`
}

// InventoryItem model. Status is derived from the stock level and the
// configured low-stock threshold, never supplied by the caller.
type InventoryItem struct {
	ID        string    `gorm:"primaryKey;column:id" json:"id"`
	Name      string    `gorm:"column:name;not null;index" json:"name"`
	Category  string    `gorm:"column:category;check:category IN ('Medicines', 'Supplies', 'Equipment', 'Consumables', 'Accessories');not null" json:"category"`
	Stock     int       `gorm:"column:stock;check:stock >= 0;not null" json:"stock"`
	Status    string    `gorm:"column:status;check:status IN ('In Stock', 'Low Stock', 'Out of Stock');not null" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (InventoryItem) TableName() string {
	return "inventory_item"
}

// InventoryInput is the create/update payload for an inventory item.
type InventoryInput struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Stock    int    `json:"stock"`
}

// Stock status labels.
const (
	StockStatusIn  = "In Stock"
	StockStatusLow = "Low Stock"
	StockStatusOut = "Out of Stock"
)

// DashboardStats holds the aggregate counts shown on the dashboard.
type DashboardStats struct {
	Patients     int64 `json:"patients"`
	Appointments int64 `json:"appointments"`
	Staff        int64 `json:"staff"`
	Inventory    int64 `json:"inventory"`
}

// DailySummary is one row of the reports page: activity and revenue for a
// single appointment date.
type DailySummary struct {
	Date          string `json:"date"`
	Patients      int64  `json:"patients"`
	CompletedApps int64  `json:"completedApps"`
	Revenue       int64  `json:"revenue"`
}
