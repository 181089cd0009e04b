package model

import (
	"time"

	"github.com/google/uuid"
)

// RegistrationModel merepresentasikan tabel registrations di database.
// Unique index di registration_id, admission_no, dan email bersifat global
// (tidak di-scope ke is_active) — ini penjaga terakhir terhadap race
// duplicate saat insert bersamaan.
type RegistrationModel struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	RegistrationID string    `gorm:"size:36;uniqueIndex;not null" json:"registration_id"`
	Name           string    `gorm:"size:100;not null" json:"name"`
	Branch         string    `gorm:"size:50;not null" json:"branch"`
	AdmissionNo    string    `gorm:"size:6;uniqueIndex;not null" json:"admission_no"`
	Phone          string    `gorm:"size:10;not null" json:"phone"`
	Email          string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Year           int       `gorm:"not null" json:"year"`
	IsActive       bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (RegistrationModel) TableName() string {
	return "registrations"
}
