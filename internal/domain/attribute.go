package domain

import "time"

// Attribute describes a named product property shared across the
// categories it is linked to.
type Attribute struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Categories []Category `json:"categories,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}
