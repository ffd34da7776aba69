package entity

import (
	"strings"

	"gorm.io/gorm"
)

type Address struct {
	gorm.Model
	Street1 string `json:"street1"`
	Street2 string `json:"street2"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode" gorm:"size:5"`
}

// OneLine flattens the address into the single-line form the directions
// lookup expects.
func (a *Address) OneLine() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{a.Street1, a.Street2, a.City, a.State + " " + a.ZipCode} {
		if s := strings.TrimSpace(p); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}
