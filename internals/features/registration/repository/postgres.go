package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"istereg_backend/internals/features/registration/model"
)

// PostgresRepository mengimplementasikan RegistrationRepository di atas GORM.
// TranslateError di gorm.Config mengubah unique violation jadi
// gorm.ErrDuplicatedKey, yang di sini dipetakan ke ErrDuplicate.
type PostgresRepository struct {
	DB *gorm.DB
}

func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, reg *model.RegistrationModel) error {
	if err := r.DB.WithContext(ctx).Create(reg).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *PostgresRepository) List(ctx context.Context, branchPrefix string, limit int) ([]model.RegistrationModel, error) {
	q := r.DB.WithContext(ctx).Where("is_active = ?", true)
	if branchPrefix != "" {
		q = q.Where("branch ILIKE ?", strings.ToUpper(branchPrefix)+"%")
	}

	var regs []model.RegistrationModel
	if err := q.Order("created_at DESC").Limit(limit).Find(&regs).Error; err != nil {
		return nil, err
	}
	return regs, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, registrationID string) (*model.RegistrationModel, error) {
	var reg model.RegistrationModel
	err := r.DB.WithContext(ctx).
		Where("registration_id = ? AND is_active = ?", registrationID, true).
		First(&reg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &reg, nil
}

func (r *PostgresRepository) ExistsActive(ctx context.Context, admissionNo, email string) (bool, error) {
	if admissionNo == "" && email == "" {
		return false, nil
	}

	q := r.DB.WithContext(ctx).Model(&model.RegistrationModel{}).Where("is_active = ?", true)
	switch {
	case admissionNo != "" && email != "":
		q = q.Where("admission_no = ? OR email = ?", admissionNo, email)
	case admissionNo != "":
		q = q.Where("admission_no = ?", admissionNo)
	default:
		q = q.Where("email = ?", email)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.RegistrationModel{}).
		Where("is_active = ?", true).
		Count(&count).Error
	return count, err
}

type groupCount struct {
	Key   string
	Count int64
}

func (r *PostgresRepository) CountByBranch(ctx context.Context) (map[string]int64, error) {
	var rows []groupCount
	err := r.DB.WithContext(ctx).Model(&model.RegistrationModel{}).
		Select("branch AS key, COUNT(*) AS count").
		Where("is_active = ?", true).
		Group("branch").
		Order("branch ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toCountMap(rows), nil
}

func (r *PostgresRepository) CountByEmailDomain(ctx context.Context) (map[string]int64, error) {
	var rows []groupCount
	err := r.DB.WithContext(ctx).Model(&model.RegistrationModel{}).
		Select("split_part(email, '@', 2) AS key, COUNT(*) AS count").
		Where("is_active = ?", true).
		Group("key").
		Order("key ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toCountMap(rows), nil
}

func (r *PostgresRepository) CountByYear(ctx context.Context) (map[int]int64, error) {
	var rows []struct {
		Key   int
		Count int64
	}
	err := r.DB.WithContext(ctx).Model(&model.RegistrationModel{}).
		Select("year AS key, COUNT(*) AS count").
		Where("is_active = ?", true).
		Group("year").
		Order("year ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[int]int64, len(rows))
	for _, row := range rows {
		counts[row.Key] = row.Count
	}
	return counts, nil
}

func toCountMap(rows []groupCount) map[string]int64 {
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Key] = row.Count
	}
	return counts
}
