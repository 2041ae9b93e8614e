// Package memory holds the in-process project store. Fundraising listings
// are seeded at startup and mutated only through recorded investments.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/powerwestjava/solar-atlas/pkg/models/domain"
)

type ProjectStore struct {
	mu          sync.RWMutex
	projects    []domain.Project
	investments []domain.Investment
	now         func() time.Time
}

// NewProjectStore seeds the store with the current school fundraising
// listings.
func NewProjectStore() *ProjectStore {
	return &ProjectStore{
		projects: []domain.Project{
			{ID: 1, Name: "SMA 1 Bandung", District: domain.DistrictBandung, TargetIDR: 100_000_000, RaisedIDR: 45_000_000},
			{ID: 2, Name: "SMK 3 Bekasi", District: domain.DistrictBekasi, TargetIDR: 150_000_000, RaisedIDR: 12_000_000},
			{ID: 3, Name: "SDN 2 Bogor", District: domain.DistrictBogor, TargetIDR: 50_000_000, RaisedIDR: 48_000_000},
		},
		now: time.Now,
	}
}

func (s *ProjectStore) ListProjects(_ context.Context) ([]domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Project, len(s.projects))
	copy(out, s.projects)
	return out, nil
}

// RecordInvestment appends a ledger entry and bumps the project's raised
// amount. The returned project reflects the new total.
func (s *ProjectStore) RecordInvestment(_ context.Context, projectID int, amountIDR float64) (domain.Investment, domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID != projectID {
			continue
		}
		inv := domain.Investment{
			ID:        uuid.NewString(),
			ProjectID: projectID,
			AmountIDR: amountIDR,
			CreatedAt: s.now().UTC(),
		}
		s.projects[i].RaisedIDR += amountIDR
		s.investments = append(s.investments, inv)
		return inv, s.projects[i], nil
	}
	return domain.Investment{}, domain.Project{}, fmt.Errorf("project %d: %w", projectID, domain.ErrProjectNotFound)
}

// Investments returns the ledger in insertion order.
func (s *ProjectStore) Investments(_ context.Context) ([]domain.Investment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Investment, len(s.investments))
	copy(out, s.investments)
	return out, nil
}
