// Package validation checks inbound checkout payloads before they reach the
// local store.
package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/models"
)

// Validator wraps a configured validator instance.
type Validator struct {
	v *validator.Validate
}

// New creates a Validator.
func New() *Validator {
	return &Validator{v: validator.New()}
}

// ValidateOrder checks the struct tags on an order and its lines.
func (vl *Validator) ValidateOrder(o *models.Order) error {
	if err := vl.v.Struct(o); err != nil {
		return fmt.Errorf("order payload invalid: %w", err)
	}
	return nil
}
