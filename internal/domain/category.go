package domain

import "time"

type Category struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Attributes []Attribute `json:"attributes,omitempty"`
	CreatedAt  time.Time   `json:"createdAt"`
}
