package models

// ParticipantType distinguishes paying adults from children.
// Values match the seed data used by the dashboard.
type ParticipantType string

const (
	TypeAdult ParticipantType = "Adulto"
	TypeChild ParticipantType = "Niño"
)

// Participant is one invitee of the event.
// Only active adults count toward the cost split; children attend free.
type Participant struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Type     ParticipantType `json:"type"`
	IsActive bool            `json:"isActive"`
	HasPaid  bool            `json:"hasPaid"`
}

// IsPaying reports whether the participant counts toward the split denominator.
func (p Participant) IsPaying() bool {
	return p.IsActive && p.Type == TypeAdult
}
