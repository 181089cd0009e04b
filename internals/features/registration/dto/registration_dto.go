package dto

import (
	"time"

	"istereg_backend/internals/features/registration/model"
)

// CreateRegistrationRequest adalah payload POST /api/register/.
// Urutan field = urutan pengecekan "<field> is required".
// Year bertipe any supaya menerima angka maupun string angka dari form.
type CreateRegistrationRequest struct {
	Name        string `json:"name" validate:"required"`
	AdmissionNo string `json:"admission_no" validate:"required"`
	Email       string `json:"email" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	Branch      string `json:"branch" validate:"required"`
	Year        any    `json:"year" validate:"required"`
}

// RegistrationResponse: record untuk client, id & timestamp sebagai string.
type RegistrationResponse struct {
	ID             string `json:"id"`
	RegistrationID string `json:"registration_id"`
	Name           string `json:"name"`
	Branch         string `json:"branch"`
	AdmissionNo    string `json:"admission_no"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Year           int    `json:"year"`
	IsActive       bool   `json:"is_active"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

func FromModel(m *model.RegistrationModel) RegistrationResponse {
	return RegistrationResponse{
		ID:             m.ID.String(),
		RegistrationID: m.RegistrationID,
		Name:           m.Name,
		Branch:         m.Branch,
		AdmissionNo:    m.AdmissionNo,
		Phone:          m.Phone,
		Email:          m.Email,
		Year:           m.Year,
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      m.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func FromModels(ms []model.RegistrationModel) []RegistrationResponse {
	out := make([]RegistrationResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
