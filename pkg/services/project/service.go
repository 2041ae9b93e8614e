// Package project serves the community fundraising listings and records
// simulated investments against them.
package project

import (
	"context"
	"errors"

	"github.com/powerwestjava/solar-atlas/pkg/models/domain"
)

// ErrInvalidAmount rejects non-positive investment amounts.
var ErrInvalidAmount = errors.New("investment amount must be greater than zero")

// Ledger is the persistence boundary for listings and investments.
type Ledger interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	RecordInvestment(ctx context.Context, projectID int, amountIDR float64) (domain.Investment, domain.Project, error)
}

type Service interface {
	List(ctx context.Context) ([]domain.Project, error)
	Invest(ctx context.Context, projectID int, amountIDR float64) (domain.Investment, domain.Project, error)
}

type service struct {
	ledger Ledger
}

func NewService(ledger Ledger) Service {
	return &service{ledger: ledger}
}

func (s *service) List(ctx context.Context) ([]domain.Project, error) {
	return s.ledger.ListProjects(ctx)
}

func (s *service) Invest(ctx context.Context, projectID int, amountIDR float64) (domain.Investment, domain.Project, error) {
	if amountIDR <= 0 {
		return domain.Investment{}, domain.Project{}, ErrInvalidAmount
	}
	return s.ledger.RecordInvestment(ctx, projectID, amountIDR)
}
