package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"istereg_backend/internals/features/registration/model"
)

// MemoryRepository adalah implementasi in-memory dari RegistrationRepository.
// Dipakai oleh unit test dan untuk menjalankan server tanpa database.
// Semantik sama dengan PostgresRepository, termasuk uniqueness global
// (record non-aktif ikut menahan admission_no / email).
type MemoryRepository struct {
	mu   sync.RWMutex
	regs map[string]model.RegistrationModel // keyed by registration_id
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{regs: make(map[string]model.RegistrationModel)}
}

func (r *MemoryRepository) Insert(ctx context.Context, reg *model.RegistrationModel) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.regs {
		if existing.RegistrationID == reg.RegistrationID ||
			existing.AdmissionNo == reg.AdmissionNo ||
			existing.Email == reg.Email {
			return ErrDuplicate
		}
	}

	if reg.ID == uuid.Nil {
		reg.ID = uuid.New()
	}
	now := time.Now().UTC()
	if reg.CreatedAt.IsZero() {
		reg.CreatedAt = now
	}
	if reg.UpdatedAt.IsZero() {
		reg.UpdatedAt = now
	}

	r.regs[reg.RegistrationID] = *reg
	return nil
}

func (r *MemoryRepository) List(ctx context.Context, branchPrefix string, limit int) ([]model.RegistrationModel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	prefix := strings.ToUpper(branchPrefix)
	var regs []model.RegistrationModel
	for _, reg := range r.regs {
		if !reg.IsActive {
			continue
		}
		if prefix != "" && !strings.HasPrefix(strings.ToUpper(reg.Branch), prefix) {
			continue
		}
		regs = append(regs, reg)
	}

	sort.Slice(regs, func(i, j int) bool {
		return regs[i].CreatedAt.After(regs[j].CreatedAt)
	})
	if limit > 0 && len(regs) > limit {
		regs = regs[:limit]
	}
	return regs, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, registrationID string) (*model.RegistrationModel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reg, ok := r.regs[registrationID]
	if !ok || !reg.IsActive {
		return nil, ErrNotFound
	}
	return &reg, nil
}

func (r *MemoryRepository) ExistsActive(ctx context.Context, admissionNo, email string) (bool, error) {
	if admissionNo == "" && email == "" {
		return false, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, reg := range r.regs {
		if !reg.IsActive {
			continue
		}
		if (admissionNo != "" && reg.AdmissionNo == admissionNo) ||
			(email != "" && reg.Email == email) {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryRepository) CountActive(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, reg := range r.regs {
		if reg.IsActive {
			count++
		}
	}
	return count, nil
}

func (r *MemoryRepository) CountByBranch(ctx context.Context) (map[string]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[string]int64)
	for _, reg := range r.regs {
		if reg.IsActive {
			counts[reg.Branch]++
		}
	}
	return counts, nil
}

func (r *MemoryRepository) CountByEmailDomain(ctx context.Context) (map[string]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[string]int64)
	for _, reg := range r.regs {
		if !reg.IsActive {
			continue
		}
		parts := strings.Split(reg.Email, "@")
		if len(parts) < 2 {
			continue
		}
		counts[parts[1]]++
	}
	return counts, nil
}

func (r *MemoryRepository) CountByYear(ctx context.Context) (map[int]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[int]int64)
	for _, reg := range r.regs {
		if reg.IsActive {
			counts[reg.Year]++
		}
	}
	return counts, nil
}
