package vendors

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jrh3k5/checkwriter/validation"
)

// Vendor is a payee that checks are regularly written to.
type Vendor struct {
	ID          string `yaml:"id" validate:"required"`
	Name        string `yaml:"name" validate:"required,min=2"`
	Address     string `yaml:"address" validate:"required,min=5"`
	Email       string `yaml:"email" validate:"required,email"`
	DefaultMemo string `yaml:"default_memo,omitempty"`
}

// New builds and validates a vendor.
func New(name, address, email, defaultMemo string) (*Vendor, error) {
	vendor := &Vendor{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(name),
		Address:     strings.TrimSpace(address),
		Email:       strings.TrimSpace(email),
		DefaultMemo: strings.TrimSpace(defaultMemo),
	}

	if err := vendor.Validate(); err != nil {
		return nil, err
	}

	return vendor, nil
}

// Validate checks the vendor's fields.
func (v *Vendor) Validate() error {
	if err := validation.Struct(v); err != nil {
		return fmt.Errorf("vendor '%s': %w", v.Name, err)
	}

	return nil
}
