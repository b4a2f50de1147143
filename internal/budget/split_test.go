package budget

import (
	"testing"

	"github.com/pepocho/presupuesto-mix/internal/models"
)

func TestComputeSplit(t *testing.T) {
	participants := []models.Participant{
		{ID: "1", Name: "Pepocho", Type: models.TypeAdult, IsActive: true, HasPaid: true},
		{ID: "2", Name: "Feny", Type: models.TypeAdult, IsActive: true},
		{ID: "3", Name: "Aldo", Type: models.TypeAdult, IsActive: true},
		{ID: "4", Name: "Thiago", Type: models.TypeChild, IsActive: true},
		{ID: "5", Name: "Momo", Type: models.TypeAdult, IsActive: false},
	}

	got := ComputeSplit(300.00, participants)

	if !got.Available {
		t.Fatal("Available = false, want true")
	}
	if got.PayingCount != 3 {
		t.Errorf("PayingCount = %d, want 3 (child and inactive adult excluded)", got.PayingCount)
	}
	if got.ActiveCount != 4 {
		t.Errorf("ActiveCount = %d, want 4", got.ActiveCount)
	}
	if !almostEqual(got.PerAdultShare, 100.00) {
		t.Errorf("PerAdultShare = %v, want 100.00", got.PerAdultShare)
	}
	if got.PaidCount != 1 || got.UnpaidCount != 2 {
		t.Errorf("Paid/Unpaid = %d/%d, want 1/2", got.PaidCount, got.UnpaidCount)
	}
	if !almostEqual(got.Outstanding, 200.00) {
		t.Errorf("Outstanding = %v, want 200.00", got.Outstanding)
	}
}

func TestComputeSplit_NoActiveAdults(t *testing.T) {
	tests := []struct {
		name         string
		participants []models.Participant
	}{
		{"empty list", nil},
		{"only children", []models.Participant{
			{ID: "1", Type: models.TypeChild, IsActive: true},
		}},
		{"only inactive adults", []models.Participant{
			{ID: "1", Type: models.TypeAdult, IsActive: false},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeSplit(500.00, tt.participants)
			if got.Available {
				t.Error("Available = true, want false")
			}
			if got.PerAdultShare != 0 {
				t.Errorf("PerAdultShare = %v, want 0 (never Inf or NaN)", got.PerAdultShare)
			}
		})
	}
}

// Toggling a child changes the headcount but never the denominator.
func TestComputeSplit_ChildToggleKeepsShare(t *testing.T) {
	base := []models.Participant{
		{ID: "1", Type: models.TypeAdult, IsActive: true},
		{ID: "2", Type: models.TypeAdult, IsActive: true},
		{ID: "3", Type: models.TypeChild, IsActive: true},
	}

	withChild := ComputeSplit(100.00, base)

	base[2].IsActive = false
	withoutChild := ComputeSplit(100.00, base)

	if !almostEqual(withChild.PerAdultShare, withoutChild.PerAdultShare) {
		t.Errorf("share moved with child toggle: %v vs %v", withChild.PerAdultShare, withoutChild.PerAdultShare)
	}
	if withChild.ActiveCount == withoutChild.ActiveCount {
		t.Error("headcount should change with child toggle")
	}
}
