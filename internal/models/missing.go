package models

import "time"

// MissingItem is one entry of the "¿faltó algo?" list: something a guest
// noticed was missing and wants added to the shopping run.
// Quantity and Price are free text, exactly as typed ("2 bolsas", "12.50").
type MissingItem struct {
	ID        string    `json:"id"`
	Requester string    `json:"requester"`
	Name      string    `json:"name"`
	Quantity  string    `json:"quantity"`
	Price     string    `json:"price,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
