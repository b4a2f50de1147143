package service

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pepocho/presupuesto-mix/internal/models"
)

var (
	ErrFundNotFound    = errors.New("fund not found")
	ErrFundCompleted   = errors.New("fund is already completed")
	ErrInvalidAmount   = errors.New("contribution amount must be positive")
	ErrMissingFundName = errors.New("contributor name is required")
)

// FundRepository is the persistence the fund service needs.
type FundRepository interface {
	Load() []models.CowFund
	Save(funds []models.CowFund) error
}

// FundService manages the cow funds. The collection is loaded once and
// written back whole after each contribution.
type FundService struct {
	mu    sync.Mutex
	funds []models.CowFund
	repo  FundRepository
}

// NewFundService loads the funds from the repository.
func NewFundService(repo FundRepository) *FundService {
	return &FundService{
		funds: repo.Load(),
		repo:  repo,
	}
}

// List returns a copy of all funds.
func (s *FundService) List() []models.CowFund {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.CowFund, len(s.funds))
	for i, f := range s.funds {
		contributors := make([]models.Contribution, len(f.Contributors))
		copy(contributors, f.Contributors)
		f.Contributors = contributors
		out[i] = f
	}
	return out
}

// Contribute records a payment into a fund. The fund flips to completed
// the moment the running total reaches the target, evaluated right after
// the contribution is recorded.
func (s *FundService) Contribute(fundID, participantID, name string, amount float64) (models.CowFund, error) {
	if amount <= 0 {
		return models.CowFund{}, ErrInvalidAmount
	}
	if name == "" {
		return models.CowFund{}, ErrMissingFundName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.funds {
		if s.funds[i].ID != fundID {
			continue
		}
		if s.funds[i].Status == models.FundCompleted {
			return models.CowFund{}, ErrFundCompleted
		}

		s.funds[i].Contributors = append(s.funds[i].Contributors, models.Contribution{
			ID:            uuid.New().String(),
			ParticipantID: participantID,
			Name:          name,
			Amount:        amount,
			Timestamp:     time.Now().UTC(),
		})
		s.funds[i].CurrentAmount += amount
		if s.funds[i].CurrentAmount >= s.funds[i].TargetAmount {
			s.funds[i].Status = models.FundCompleted
		}

		if err := s.repo.Save(s.funds); err != nil {
			// Contribution stays applied in memory; the caller may
			// surface the persistence failure as a non-fatal notice.
			return s.funds[i], err
		}
		return s.funds[i], nil
	}
	return models.CowFund{}, ErrFundNotFound
}
