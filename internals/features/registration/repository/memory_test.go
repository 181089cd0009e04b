package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"istereg_backend/internals/features/registration/model"
)

func newRegistration(admissionNo, email, branch string, year int) *model.RegistrationModel {
	return &model.RegistrationModel{
		RegistrationID: uuid.NewString(),
		Name:           "Test Student",
		Branch:         branch,
		AdmissionNo:    admissionNo,
		Phone:          "9876543210",
		Email:          email,
		Year:           year,
		IsActive:       true,
	}
}

func TestMemoryInsertAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	reg := newRegistration("123456", "a@gmail.com", "COE", 1)
	require.NoError(t, repo.Insert(ctx, reg))
	assert.NotEqual(t, uuid.Nil, reg.ID)
	assert.False(t, reg.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, reg.RegistrationID)
	require.NoError(t, err)
	assert.Equal(t, "123456", got.AdmissionNo)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryInsertDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	require.NoError(t, repo.Insert(ctx, newRegistration("123456", "a@gmail.com", "COE", 1)))

	// same admission_no, different email
	err := repo.Insert(ctx, newRegistration("123456", "b@gmail.com", "COE", 1))
	assert.ErrorIs(t, err, ErrDuplicate)

	// same email, different admission_no
	err = repo.Insert(ctx, newRegistration("654321", "a@gmail.com", "COE", 1))
	assert.ErrorIs(t, err, ErrDuplicate)

	// both different
	require.NoError(t, repo.Insert(ctx, newRegistration("654321", "b@gmail.com", "ECE", 2)))
}

// Uniqueness bersifat global: record non-aktif tetap menahan admission_no.
func TestMemoryInsertDuplicateAgainstInactive(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	inactive := newRegistration("123456", "a@gmail.com", "COE", 1)
	inactive.IsActive = false
	require.NoError(t, repo.Insert(ctx, inactive))

	err := repo.Insert(ctx, newRegistration("123456", "b@gmail.com", "COE", 1))
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestMemoryListOrderingFilterLimit(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	first := newRegistration("100001", "a@gmail.com", "COE", 1)
	first.CreatedAt = time.Now().Add(-2 * time.Hour)
	second := newRegistration("100002", "b@gmail.com", "CSE", 2)
	second.CreatedAt = time.Now().Add(-1 * time.Hour)
	third := newRegistration("100003", "c@thapar.edu", "ECE", 1)
	third.CreatedAt = time.Now()
	inactive := newRegistration("100004", "d@gmail.com", "COE", 1)
	inactive.IsActive = false

	for _, reg := range []*model.RegistrationModel{first, second, third, inactive} {
		require.NoError(t, repo.Insert(ctx, reg))
	}

	regs, err := repo.List(ctx, "", 100)
	require.NoError(t, err)
	require.Len(t, regs, 3) // inactive excluded
	assert.Equal(t, "100003", regs[0].AdmissionNo)
	assert.Equal(t, "100002", regs[1].AdmissionNo)
	assert.Equal(t, "100001", regs[2].AdmissionNo)

	// branch prefix, case-insensitive: "c" matches COE dan CSE (bukan ECE)
	regs, err = repo.List(ctx, "c", 100)
	require.NoError(t, err)
	require.Len(t, regs, 2)
	assert.Equal(t, "100002", regs[0].AdmissionNo)
	assert.Equal(t, "100001", regs[1].AdmissionNo)

	regs, err = repo.List(ctx, "", 2)
	require.NoError(t, err)
	assert.Len(t, regs, 2)
}

func TestMemoryExistsActive(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	require.NoError(t, repo.Insert(ctx, newRegistration("123456", "a@gmail.com", "COE", 1)))

	inactive := newRegistration("999999", "z@gmail.com", "COE", 1)
	inactive.IsActive = false
	require.NoError(t, repo.Insert(ctx, inactive))

	exists, err := repo.ExistsActive(ctx, "123456", "other@gmail.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsActive(ctx, "000000", "a@gmail.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsActive(ctx, "000000", "other@gmail.com")
	require.NoError(t, err)
	assert.False(t, exists)

	// record non-aktif tidak terlihat oleh existence check
	exists, err = repo.ExistsActive(ctx, "999999", "z@gmail.com")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.ExistsActive(ctx, "", "")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemoryCounts(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	require.NoError(t, repo.Insert(ctx, newRegistration("100001", "a@gmail.com", "COE", 1)))
	require.NoError(t, repo.Insert(ctx, newRegistration("100002", "b@thapar.edu", "COE", 2)))
	require.NoError(t, repo.Insert(ctx, newRegistration("100003", "c@gmail.com", "ECE", 1)))
	inactive := newRegistration("100004", "d@gmail.com", "COE", 3)
	inactive.IsActive = false
	require.NoError(t, repo.Insert(ctx, inactive))

	total, err := repo.CountActive(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)

	byBranch, err := repo.CountByBranch(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"COE": 2, "ECE": 1}, byBranch)

	byDomain, err := repo.CountByEmailDomain(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"gmail.com": 2, "thapar.edu": 1}, byDomain)

	byYear, err := repo.CountByYear(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[int]int64{1: 2, 2: 1}, byYear)
}
