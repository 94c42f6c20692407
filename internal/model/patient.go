package model

import (
	"time"

	"github.com/google/uuid"
)

type Patient struct {
	ID        uuid.UUID `db:"id" json:"id"`
	DoctorID  uuid.UUID `db:"doctor_id" json:"doctor"`
	Name      string    `db:"name" json:"name"`
	Age       int       `db:"age" json:"age"`
	Gender    int       `db:"gender" json:"gender"`
	Condition string    `db:"condition" json:"condition"`
	Contact   string    `db:"contact" json:"contact"`
	Note      *string   `db:"note" json:"note,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// PatientSummary is the list projection; the note field is deliberately
// omitted and the contact column is exposed as "phone".
type PatientSummary struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Age       int       `db:"age" json:"age"`
	Gender    int       `db:"gender" json:"gender"`
	Condition string    `db:"condition" json:"condition"`
	Phone     string    `db:"contact" json:"phone"`
}

// AddPatientRequest mirrors the add-patient form. The id field is accepted
// for wire compatibility but ignored; the store generates its own.
type AddPatientRequest struct {
	ID        string  `json:"id"`
	Name      string  `json:"name" binding:"required"`
	Phone     string  `json:"phone" binding:"required"`
	Condition string  `json:"condition" binding:"required"`
	Notes     *string `json:"notes"`
	Gender    int     `json:"gender" binding:"gte=0"`
	Age       int     `json:"age" binding:"gte=0"`
}

type DashboardSummary struct {
	Username       string           `json:"username"`
	TotalPatients  int              `json:"total_patients"`
	RecentPatients []PatientSummary `json:"recent_patients"`
}
