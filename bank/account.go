package bank

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jrh3k5/checkwriter/validation"
)

const (
	// MinimumCheckNumber is the lowest starting check number a bank account may use.
	MinimumCheckNumber = 1001
	// MaximumStartingCheckNumber is the highest starting check number a bank account may use.
	MaximumStartingCheckNumber = 9999
	// MaximumCheckNumber is the highest check number that fits the five-digit check number field.
	MaximumCheckNumber = 99999
)

// Account is a bank account that checks are drawn on.
type Account struct {
	ID                  string `yaml:"id" validate:"required"`
	Name                string `yaml:"name" validate:"required"`
	RoutingNumber       string `yaml:"routing_number" validate:"required,len=9,number"`
	AccountNumber       string `yaml:"account_number" validate:"required,number"`
	Address             string `yaml:"address,omitempty"`
	StartingCheckNumber int    `yaml:"starting_check_number" validate:"gte=1001,lte=9999"`
	NextCheckNumber     int    `yaml:"next_check_number" validate:"gtefield=StartingCheckNumber,lte=99999"`
}

// NewAccount builds and validates a new bank account whose first check will be the starting check number.
func NewAccount(name, routingNumber, accountNumber, address string, startingCheckNumber int) (*Account, error) {
	account := &Account{
		ID:                  uuid.NewString(),
		Name:                strings.TrimSpace(name),
		RoutingNumber:       strings.TrimSpace(routingNumber),
		AccountNumber:       strings.TrimSpace(accountNumber),
		Address:             strings.TrimSpace(address),
		StartingCheckNumber: startingCheckNumber,
		NextCheckNumber:     startingCheckNumber,
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	return account, nil
}

// Validate checks the account's fields.
func (a *Account) Validate() error {
	if err := validation.Struct(a); err != nil {
		return fmt.Errorf("bank account '%s': %w", a.Name, err)
	}

	return nil
}

// MaskedAccountNumber hides all but the last four digits of the account number.
func (a *Account) MaskedAccountNumber() string {
	return "****" + a.LastFour()
}

// LastFour returns the last four digits of the account number.
func (a *Account) LastFour() string {
	if len(a.AccountNumber) <= 4 {
		return a.AccountNumber
	}

	return a.AccountNumber[len(a.AccountNumber)-4:]
}

// TakeCheckNumber returns the number to use for the next check and advances the account past it.
func (a *Account) TakeCheckNumber() (int, error) {
	number := a.NextCheckNumber
	if number < a.StartingCheckNumber {
		number = a.StartingCheckNumber
	}

	if number > MaximumCheckNumber {
		return 0, fmt.Errorf("next check number %d for bank account '%s' is greater than %d", number, a.Name, MaximumCheckNumber)
	}

	a.NextCheckNumber = number + 1

	return number, nil
}
