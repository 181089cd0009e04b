package repository

import (
	"context"
	"errors"

	"istereg_backend/internals/features/registration/model"
)

var (
	// ErrDuplicate: unique index tertabrak (registration_id, admission_no, email).
	ErrDuplicate = errors.New("registration already exists")
	ErrNotFound  = errors.New("registration not found")
)

// RegistrationRepository adalah kontrak store untuk collection registrations.
// Semua operasi baca hanya melihat record aktif (is_active = true);
// uniqueness di Insert bersifat global, termasuk record non-aktif.
type RegistrationRepository interface {
	Insert(ctx context.Context, reg *model.RegistrationModel) error
	// List: record aktif, opsional prefix branch (case-insensitive),
	// urut created_at desc, maksimal limit record.
	List(ctx context.Context, branchPrefix string, limit int) ([]model.RegistrationModel, error)
	GetByID(ctx context.Context, registrationID string) (*model.RegistrationModel, error)
	// ExistsActive: ada record aktif dengan admission_no ATAU email tersebut?
	ExistsActive(ctx context.Context, admissionNo, email string) (bool, error)
	CountActive(ctx context.Context) (int64, error)
	CountByBranch(ctx context.Context) (map[string]int64, error)
	CountByEmailDomain(ctx context.Context) (map[string]int64, error)
	CountByYear(ctx context.Context) (map[int]int64, error)
}
