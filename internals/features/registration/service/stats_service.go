package service

import (
	"context"
	"fmt"
)

// RegistrationStats adalah output GET /api/stats/. Grouping dihitung penuh
// setiap panggilan (tanpa cache) dan hanya melihat record aktif.
// Key map ter-marshal terurut ascending, sesuai urutan grouping di store.
type RegistrationStats struct {
	TotalRegistrations int64            `json:"total_registrations"`
	BranchWise         map[string]int64 `json:"branch_wise"`
	EmailDomains       map[string]int64 `json:"email_domains"`
	YearWise           map[string]int64 `json:"year_wise"`
}

// Stats menghitung total + tiga grouping: per branch, per domain email
// (potongan setelah '@'), dan per tahun (key "Year {n}").
func (s *RegistrationService) Stats(ctx context.Context) (*RegistrationStats, error) {
	total, err := s.repo.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	branchWise, err := s.repo.CountByBranch(ctx)
	if err != nil {
		return nil, err
	}

	emailDomains, err := s.repo.CountByEmailDomain(ctx)
	if err != nil {
		return nil, err
	}

	byYear, err := s.repo.CountByYear(ctx)
	if err != nil {
		return nil, err
	}
	yearWise := make(map[string]int64, len(byYear))
	for year, count := range byYear {
		yearWise[fmt.Sprintf("Year %d", year)] = count
	}

	return &RegistrationStats{
		TotalRegistrations: total,
		BranchWise:         branchWise,
		EmailDomains:       emailDomains,
		YearWise:           yearWise,
	}, nil
}
