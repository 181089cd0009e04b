package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"istereg_backend/internals/features/registration/dto"
	"istereg_backend/internals/features/registration/model"
	"istereg_backend/internals/features/registration/repository"
)

// ErrDuplicateRegistration: admission_no atau email sudah terdaftar aktif.
// Pesan ini juga dipakai saat race check-then-insert kalah dari unique index.
var ErrDuplicateRegistration = errors.New("Student already registered with this admission number or email")

var ErrRegistrationNotFound = errors.New("Registration not found")

type RegistrationService struct {
	repo repository.RegistrationRepository
}

func NewRegistrationService(repo repository.RegistrationRepository) *RegistrationService {
	return &RegistrationService{repo: repo}
}

// Create: validasi + normalisasi -> pre-check duplicate -> insert.
// Pre-check memberi pesan ramah di kasus umum; unique index di store tetap
// penjaga kebenaran saat ada insert bersamaan — tabrakan index dipetakan ke
// ErrDuplicateRegistration, bukan bocor sebagai internal error.
func (s *RegistrationService) Create(ctx context.Context, req dto.CreateRegistrationRequest) (*model.RegistrationModel, error) {
	norm, fieldErrs := ValidateRegistration(req)
	if fieldErrs != nil {
		return nil, fieldErrs
	}

	exists, err := s.repo.ExistsActive(ctx, norm.AdmissionNo, norm.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateRegistration
	}

	reg := &model.RegistrationModel{
		RegistrationID: uuid.NewString(),
		Name:           norm.Name,
		Branch:         norm.Branch,
		AdmissionNo:    norm.AdmissionNo,
		Phone:          norm.Phone,
		Email:          norm.Email,
		Year:           norm.Year,
		IsActive:       true,
	}

	if err := s.repo.Insert(ctx, reg); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateRegistration
		}
		return nil, err
	}
	return reg, nil
}

const defaultListLimit = 100

// List: record aktif, opsional filter prefix branch, urut terbaru dulu.
func (s *RegistrationService) List(ctx context.Context, branchPrefix string, limit int) ([]model.RegistrationModel, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.repo.List(ctx, branchPrefix, limit)
}

func (s *RegistrationService) GetByID(ctx context.Context, registrationID string) (*model.RegistrationModel, error) {
	reg, err := s.repo.GetByID(ctx, registrationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRegistrationNotFound
		}
		return nil, err
	}
	return reg, nil
}
