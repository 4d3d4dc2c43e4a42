package domain

import "time"

type Currency struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Acronym   string    `json:"acronym"`
	Symbol    string    `json:"symbol"`
	CreatedAt time.Time `json:"createdAt"`
}
