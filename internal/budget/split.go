package budget

import (
	"github.com/pepocho/presupuesto-mix/internal/models"
)

// Split is the per-person division of the total cost.
// Available is false when there is nobody to divide among; the share is
// zero in that case, never Inf or NaN.
type Split struct {
	Available     bool    `json:"available"`
	PerAdultShare float64 `json:"perAdultShare"`
	PayingCount   int     `json:"payingCount"`
	ActiveCount   int     `json:"activeCount"`
	PaidCount     int     `json:"paidCount"`
	UnpaidCount   int     `json:"unpaidCount"`
	Outstanding   float64 `json:"outstanding"`
}

// ComputeSplit divides totalCost among the active adult participants.
// Children count toward the headcount but never toward the denominator,
// so toggling a child's attendance never moves the per-adult share.
func ComputeSplit(totalCost float64, participants []models.Participant) Split {
	var s Split
	for _, p := range participants {
		if !p.IsActive {
			continue
		}
		s.ActiveCount++
		if p.Type != models.TypeAdult {
			continue
		}
		s.PayingCount++
		if p.HasPaid {
			s.PaidCount++
		} else {
			s.UnpaidCount++
		}
	}

	if s.PayingCount == 0 {
		return s
	}

	s.Available = true
	s.PerAdultShare = totalCost / float64(s.PayingCount)
	s.Outstanding = float64(s.UnpaidCount) * s.PerAdultShare
	return s
}
