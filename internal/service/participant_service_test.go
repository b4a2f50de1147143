package service

import (
	"errors"
	"testing"

	"github.com/pepocho/presupuesto-mix/internal/models"
)

func testParticipants() []models.Participant {
	return []models.Participant{
		{ID: "p1", Name: "Gonzalo", Type: models.TypeAdult, IsActive: true, HasPaid: true},
		{ID: "p2", Name: "Rafael", Type: models.TypeAdult, IsActive: true, HasPaid: false},
		{ID: "p3", Name: "Benjamín", Type: models.TypeChild, IsActive: true, HasPaid: false},
		{ID: "p4", Name: "Diego", Type: models.TypeAdult, IsActive: false, HasPaid: false},
	}
}

func TestParticipantService_SetActiveAffectsSplit(t *testing.T) {
	svc := NewParticipantService(testParticipants())

	split := svc.Split(200)
	if split.PayingCount != 2 || !almostEqual(split.PerAdultShare, 100) {
		t.Fatalf("initial split = %+v, want 2 paying at 100", split)
	}

	// Activating the third adult lowers the share.
	if _, err := svc.SetActive("p4", true); err != nil {
		t.Fatalf("SetActive() unexpected error = %v", err)
	}
	split = svc.Split(200)
	if split.PayingCount != 3 {
		t.Errorf("PayingCount = %d, want 3", split.PayingCount)
	}

	// Children never enter the denominator.
	if _, err := svc.SetActive("p3", false); err != nil {
		t.Fatalf("SetActive() unexpected error = %v", err)
	}
	if got := svc.Split(200); got.PayingCount != 3 {
		t.Errorf("PayingCount after child toggle = %d, want 3", got.PayingCount)
	}
}

func TestParticipantService_SetPaid(t *testing.T) {
	svc := NewParticipantService(testParticipants())

	p, err := svc.SetPaid("p2", true)
	if err != nil {
		t.Fatalf("SetPaid() unexpected error = %v", err)
	}
	if !p.HasPaid {
		t.Error("HasPaid not set")
	}

	split := svc.Split(200)
	if split.UnpaidCount != 0 || !almostEqual(split.Outstanding, 0) {
		t.Errorf("split = %+v, want nothing outstanding", split)
	}
}

func TestParticipantService_NotFound(t *testing.T) {
	svc := NewParticipantService(testParticipants())

	if _, err := svc.SetActive("nope", true); !errors.Is(err, ErrParticipantNotFound) {
		t.Errorf("SetActive error = %v, want ErrParticipantNotFound", err)
	}
	if _, err := svc.SetPaid("nope", true); !errors.Is(err, ErrParticipantNotFound) {
		t.Errorf("SetPaid error = %v, want ErrParticipantNotFound", err)
	}
}

func TestParticipantService_ListIsCopy(t *testing.T) {
	svc := NewParticipantService(testParticipants())

	list := svc.List()
	list[0].Name = "mutated"

	if got := svc.List(); got[0].Name != "Gonzalo" {
		t.Errorf("internal list leaked mutation: %s", got[0].Name)
	}
}
