package models

import "time"

// Fund status values.
const (
	FundActive    = "active"
	FundCompleted = "completed"
)

// CowFund is a shared pot ("vaca") collected toward a group purchase.
// Status flips to completed the moment CurrentAmount reaches TargetAmount.
type CowFund struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	TargetAmount  float64        `json:"targetAmount"`
	CurrentAmount float64        `json:"currentAmount"`
	Status        string         `json:"status"`
	Contributors  []Contribution `json:"contributors"`
}

// Contribution records one payment into a fund.
type Contribution struct {
	ID            string    `json:"id"`
	ParticipantID string    `json:"participantId"`
	Name          string    `json:"name"`
	Amount        float64   `json:"amount"`
	Timestamp     time.Time `json:"timestamp"`
}
