package repository

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pepocho/presupuesto-mix/internal/models"
)

func TestMissingItemStore_AppendListClear(t *testing.T) {
	store := NewMissingItemStore(filepath.Join(t.TempDir(), "missing.json"))

	if got := store.List(); len(got) != 0 {
		t.Fatalf("fresh store List() = %+v, want empty", got)
	}

	first := models.MissingItem{
		ID:        "m1",
		Requester: "Gonzalo",
		Name:      "Hielo",
		Quantity:  "3 bolsas",
		Price:     "15",
		Timestamp: time.Date(2026, 2, 18, 20, 0, 0, 0, time.UTC),
	}
	if err := store.Append(first); err != nil {
		t.Fatalf("Append() unexpected error = %v", err)
	}
	if err := store.Append(models.MissingItem{ID: "m2", Requester: "Voz", Name: "Carbón", Quantity: "1"}); err != nil {
		t.Fatalf("Append() unexpected error = %v", err)
	}

	items := store.List()
	if len(items) != 2 {
		t.Fatalf("List() = %d items, want 2", len(items))
	}
	// Oldest first, fields round-trip intact.
	if items[0].ID != first.ID || items[0].Name != first.Name || items[0].Price != first.Price {
		t.Errorf("List()[0] = %+v, want %+v", items[0], first)
	}
	if !items[0].Timestamp.Equal(first.Timestamp) {
		t.Errorf("Timestamp = %v, want %v", items[0].Timestamp, first.Timestamp)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() unexpected error = %v", err)
	}
	if got := store.List(); len(got) != 0 {
		t.Errorf("List() after Clear() = %+v, want empty", got)
	}
}

func TestMissingItemStore_CorruptFileResets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	store := NewMissingItemStore(path)

	if got := store.List(); len(got) != 0 {
		t.Fatalf("List() on corrupt file = %+v, want empty", got)
	}

	// The store recovers: an append replaces the corrupt contents.
	if err := store.Append(models.MissingItem{ID: "m1", Requester: "Gonzalo", Name: "Hielo"}); err != nil {
		t.Fatalf("Append() unexpected error = %v", err)
	}
	if got := store.List(); len(got) != 1 {
		t.Errorf("List() after recovery = %d items, want 1", len(got))
	}
}

func TestFundStore_LoadFallsBackToSeed(t *testing.T) {
	store := NewFundStore(filepath.Join(t.TempDir(), "funds.json"))

	funds := store.Load()
	if len(funds) == 0 {
		t.Fatal("Load() on missing file returned no seed funds")
	}
	if funds[0].Name != "Whisky Blue Label" {
		t.Errorf("seed fund = %s, want Whisky Blue Label", funds[0].Name)
	}
}

func TestFundStore_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "funds.json")
	store := NewFundStore(path)

	funds := []models.CowFund{
		{
			ID:            "f1",
			Name:          "Pisco Portón",
			TargetAmount:  300,
			CurrentAmount: 120,
			Status:        models.FundActive,
			Contributors: []models.Contribution{
				{ID: "c1", ParticipantID: "p1", Name: "Diego", Amount: 120, Timestamp: time.Date(2026, 2, 18, 20, 0, 0, 0, time.UTC)},
			},
		},
	}
	if err := store.Save(funds); err != nil {
		t.Fatalf("Save() unexpected error = %v", err)
	}

	loaded := NewFundStore(path).Load()
	if len(loaded) != 1 {
		t.Fatalf("Load() = %d funds, want 1", len(loaded))
	}
	if loaded[0].Name != "Pisco Portón" || loaded[0].CurrentAmount != 120 {
		t.Errorf("Load()[0] = %+v", loaded[0])
	}
	if len(loaded[0].Contributors) != 1 || loaded[0].Contributors[0].Name != "Diego" {
		t.Errorf("contributors = %+v", loaded[0].Contributors)
	}
}

func TestFundStore_CorruptFileFallsBackToSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "funds.json")
	if err := os.WriteFile(path, []byte("[[["), 0o644); err != nil {
		t.Fatal(err)
	}

	funds := NewFundStore(path).Load()
	if len(funds) == 0 || funds[0].Name != "Whisky Blue Label" {
		t.Errorf("Load() on corrupt file = %+v, want seed funds", funds)
	}
}
