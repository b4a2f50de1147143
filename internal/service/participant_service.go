package service

import (
	"errors"
	"sync"

	"github.com/pepocho/presupuesto-mix/internal/budget"
	"github.com/pepocho/presupuesto-mix/internal/models"
)

var ErrParticipantNotFound = errors.New("participant not found")

// ParticipantService owns the guest list and the payment ledger.
type ParticipantService struct {
	mu           sync.Mutex
	participants []models.Participant
}

// NewParticipantService creates the service over the seed guest list.
func NewParticipantService(participants []models.Participant) *ParticipantService {
	return &ParticipantService{participants: participants}
}

// List returns a copy of the guest list.
func (s *ParticipantService) List() []models.Participant {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Participant, len(s.participants))
	copy(out, s.participants)
	return out
}

// SetActive toggles whether a participant attends the event.
func (s *ParticipantService) SetActive(id string, active bool) (models.Participant, error) {
	return s.update(id, func(p *models.Participant) { p.IsActive = active })
}

// SetPaid marks a participant's share as paid or unpaid.
func (s *ParticipantService) SetPaid(id string, paid bool) (models.Participant, error) {
	return s.update(id, func(p *models.Participant) { p.HasPaid = paid })
}

func (s *ParticipantService) update(id string, fn func(*models.Participant)) (models.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.participants {
		if s.participants[i].ID == id {
			fn(&s.participants[i])
			return s.participants[i], nil
		}
	}
	return models.Participant{}, ErrParticipantNotFound
}

// Split divides totalCost among the active paying adults.
func (s *ParticipantService) Split(totalCost float64) budget.Split {
	s.mu.Lock()
	defer s.mu.Unlock()
	return budget.ComputeSplit(totalCost, s.participants)
}
