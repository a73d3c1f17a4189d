package client

import (
	"context"
	"strconv"

	"github.com/BSIT-Sanchez/LGC/models"
	"github.com/BSIT-Sanchez/LGC/utils"
)

// Typed stores for the clinic collections. Each mirrors one list view.

func NewPatientStore(c *Client, notifier Notifier, confirm ConfirmFunc) *EntityStore[models.Patient] {
	return NewEntityStore(c, "/patients", "patient", func(p models.Patient) string { return p.ID }, notifier, confirm)
}

func NewAppointmentStore(c *Client, notifier Notifier, confirm ConfirmFunc) *EntityStore[models.Appointment] {
	return NewEntityStore(c, "/appointments", "appointment", func(a models.Appointment) string { return a.ID }, notifier, confirm)
}

func NewBillingStore(c *Client, notifier Notifier, confirm ConfirmFunc) *EntityStore[models.Billing] {
	return NewEntityStore(c, "/billing", "invoice", func(b models.Billing) string { return b.ID }, notifier, confirm)
}

func NewStaffStore(c *Client, notifier Notifier, confirm ConfirmFunc) *EntityStore[models.Staff] {
	return NewEntityStore(c, "/staff", "staff member", func(s models.Staff) string { return s.ID }, notifier, confirm)
}

func NewInventoryStore(c *Client, notifier Notifier, confirm ConfirmFunc) *EntityStore[models.InventoryItem] {
	return NewEntityStore(c, "/inventory", "inventory item", func(i models.InventoryItem) string { return i.ID }, notifier, confirm)
}

func NewUserStore(c *Client, notifier Notifier, confirm ConfirmFunc) *EntityStore[models.User] {
	return NewEntityStore(c, "/users", "user", func(u models.User) string { return strconv.FormatInt(u.ID, 10) }, notifier, confirm)
}

// Form constructors. Drafts validate with the same rules the server applies,
// so bad input never leaves the form.

func NewPatientForm(store *EntityStore[models.Patient]) *Form[models.PatientInput] {
	return NewForm(
		func() models.PatientInput { return models.PatientInput{Gender: "Female", Service: "Prenatal Checkup"} },
		func(draft models.PatientInput) error { return utils.ValidatePatientInput(draft) },
		func(ctx context.Context, draft models.PatientInput) error {
			_, err := store.Create(ctx, draft)
			return err
		},
		func(ctx context.Context, id string, draft models.PatientInput) error {
			_, err := store.Update(ctx, id, draft)
			return err
		},
	)
}

func NewAppointmentForm(store *EntityStore[models.Appointment]) *Form[models.AppointmentInput] {
	return NewForm(
		func() models.AppointmentInput { return models.AppointmentInput{Type: "Prenatal Checkup"} },
		func(draft models.AppointmentInput) error { return utils.ValidateAppointmentInput(draft) },
		func(ctx context.Context, draft models.AppointmentInput) error {
			_, err := store.Create(ctx, draft)
			return err
		},
		func(ctx context.Context, id string, draft models.AppointmentInput) error {
			_, err := store.Update(ctx, id, draft)
			return err
		},
	)
}

func NewBillingForm(store *EntityStore[models.Billing]) *Form[models.BillingInput] {
	return NewForm(
		func() models.BillingInput { return models.BillingInput{Status: "Unpaid"} },
		func(draft models.BillingInput) error { return utils.ValidateBillingInput(draft) },
		func(ctx context.Context, draft models.BillingInput) error {
			_, err := store.Create(ctx, draft)
			return err
		},
		func(ctx context.Context, id string, draft models.BillingInput) error {
			_, err := store.Update(ctx, id, draft)
			return err
		},
	)
}

func NewStaffForm(store *EntityStore[models.Staff]) *Form[models.StaffInput] {
	return NewForm(
		func() models.StaffInput { return models.StaffInput{Status: "Active"} },
		func(draft models.StaffInput) error { return utils.ValidateStaffInput(draft) },
		func(ctx context.Context, draft models.StaffInput) error {
			_, err := store.Create(ctx, draft)
			return err
		},
		func(ctx context.Context, id string, draft models.StaffInput) error {
			_, err := store.Update(ctx, id, draft)
			return err
		},
	)
}

func NewInventoryForm(store *EntityStore[models.InventoryItem]) *Form[models.InventoryInput] {
	return NewForm(
		func() models.InventoryInput { return models.InventoryInput{Category: "Medicines"} },
		func(draft models.InventoryInput) error { return utils.ValidateInventoryInput(draft) },
		func(ctx context.Context, draft models.InventoryInput) error {
			_, err := store.Create(ctx, draft)
			return err
		},
		func(ctx context.Context, id string, draft models.InventoryInput) error {
			_, err := store.Update(ctx, id, draft)
			return err
		},
	)
}

func NewUserForm(store *EntityStore[models.User]) *Form[models.UserInput] {
	return NewForm(
		func() models.UserInput { return models.UserInput{} },
		func(draft models.UserInput) error { return utils.ValidateUserInput(draft) },
		func(ctx context.Context, draft models.UserInput) error {
			_, err := store.Create(ctx, draft)
			return err
		},
		func(ctx context.Context, id string, draft models.UserInput) error {
			_, err := store.Update(ctx, id, draft)
			return err
		},
	)
}

// loginResponse is the data half of a successful /auth/login envelope.
type loginResponse struct {
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
	User         SessionUser `json:"user"`
}

// Login authenticates against the server and starts the session on success.
func Login(ctx context.Context, c *Client, session *Session, email, password string) error {
	var resp loginResponse
	err := c.Post(ctx, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return err
	}
	session.Start(resp.User, resp.AccessToken)
	return nil
}

// Logout tells the server to drop the session and clears it locally. The
// local session is cleared even when the server call fails.
func Logout(ctx context.Context, c *Client, session *Session) error {
	err := c.Post(ctx, "/auth/logoff", nil, nil)
	session.Clear()
	return err
}

// UserLabel formats a session user for display, e.g. "jane (#3)".
func UserLabel(user SessionUser) string {
	return user.Username + " (#" + strconv.FormatInt(user.ID, 10) + ")"
}
