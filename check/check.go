package check

import (
	"fmt"
	"time"

	"github.com/jrh3k5/checkwriter/validation"
)

// DateLayout is the layout of a check's date.
const DateLayout = time.DateOnly

// Check is a single check written against a bank account.
//
// AmountWords is captured when the amount is set and is the legal wording of the check;
// it is stored, never recomputed for display.
type Check struct {
	ID            string     `yaml:"id" validate:"required"`
	BankAccountID string     `yaml:"bank_account_id" validate:"required"`
	Number        int        `yaml:"check_no" validate:"gte=1001,lte=99999"`
	VendorID      string     `yaml:"vendor_id,omitempty"`
	Payee         string     `yaml:"payee" validate:"required"`
	Amount        int64      `yaml:"amount" validate:"gte=1"`
	AmountWords   string     `yaml:"amount_words" validate:"required"`
	Date          string     `yaml:"date" validate:"required,datetime=2006-01-02"`
	Memo          string     `yaml:"memo,omitempty"`
	Status        Status     `yaml:"status" validate:"oneof=draft pending approved printed emailed void"`
	PrintedAt     *time.Time `yaml:"printed_at,omitempty"`
	CreatedAt     time.Time  `yaml:"created_at"`
	UpdatedAt     time.Time  `yaml:"updated_at"`
}

// Validate checks the record's fields.
func (c *Check) Validate() error {
	if err := validation.Struct(c); err != nil {
		return fmt.Errorf("check #%d: %w", c.Number, err)
	}

	return nil
}

// ParsedDate returns the check's date as a time.
func (c *Check) ParsedDate() (time.Time, error) {
	date, err := time.Parse(DateLayout, c.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse date '%s' of check #%d: %w", c.Date, c.Number, err)
	}

	return date, nil
}

// Draft is the information entered to write a new check.
type Draft struct {
	BankAccountID string
	VendorID      string
	Payee         string
	AmountInput   string
	Date          string
	Memo          string
}

// Filter narrows a listing of checks. Empty fields match everything.
type Filter struct {
	BankAccountID string
	Statuses      []Status
}

func (f Filter) matches(c *Check) bool {
	if f.BankAccountID != "" && f.BankAccountID != c.BankAccountID {
		return false
	}

	if len(f.Statuses) == 0 {
		return true
	}

	for _, status := range f.Statuses {
		if status == c.Status {
			return true
		}
	}

	return false
}
