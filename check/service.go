package check

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jrh3k5/checkwriter/currency"
)

// Service writes checks and moves them through their lifecycle.
type Service struct {
	store  Store
	logger *zap.Logger
	now    func() time.Time
}

// NewService builds a Service over the given store.
func NewService(store Store, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock replaces the clock used to stamp records.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Create writes a new draft check from the given draft, taking the bank account's next check number.
// The amount's words are captured once, here, and stored with the check.
func (s *Service) Create(ctx context.Context, caps Capabilities, draft Draft) (*Check, error) {
	if err := caps.RequireWrite(); err != nil {
		return nil, err
	}

	amount, amountWords, err := convertAmount(draft.AmountInput)
	if err != nil {
		return nil, err
	}

	if draft.BankAccountID == "" {
		return nil, fmt.Errorf("%w: a bank account is required", ErrInvalidDraft)
	}

	account, err := s.store.GetAccount(ctx, draft.BankAccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bank account '%s': %w", draft.BankAccountID, err)
	}

	payee := strings.TrimSpace(draft.Payee)
	memo := strings.TrimSpace(draft.Memo)
	if draft.VendorID != "" {
		v, err := s.store.GetVendor(ctx, draft.VendorID)
		if err != nil {
			return nil, fmt.Errorf("failed to get vendor '%s': %w", draft.VendorID, err)
		}

		if payee == "" {
			payee = v.Name
		}

		if memo == "" {
			memo = v.DefaultMemo
		}
	}

	if payee == "" {
		return nil, fmt.Errorf("%w: a payee is required", ErrInvalidDraft)
	}

	now := s.now()

	date := strings.TrimSpace(draft.Date)
	if date == "" {
		date = now.Format(DateLayout)
	} else if _, err := time.Parse(DateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: date '%s' must be formatted as YYYY-MM-DD", ErrInvalidDraft, date)
	}

	number, err := account.TakeCheckNumber()
	if err != nil {
		return nil, fmt.Errorf("failed to assign a check number: %w", err)
	}

	check := &Check{
		ID:            uuid.NewString(),
		BankAccountID: account.ID,
		Number:        number,
		VendorID:      draft.VendorID,
		Payee:         payee,
		Amount:        amount,
		AmountWords:   amountWords,
		Date:          date,
		Memo:          memo,
		Status:        StatusDraft,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := check.Validate(); err != nil {
		return nil, err
	}

	if err := s.store.CreateCheck(ctx, check, account); err != nil {
		return nil, fmt.Errorf("failed to save check #%d: %w", check.Number, err)
	}

	s.logger.Info("created check",
		zap.String("checkID", check.ID),
		zap.Int("checkNumber", check.Number),
		zap.String("bankAccountID", check.BankAccountID),
		zap.Int64("amountCents", check.Amount),
	)

	return check, nil
}

// Get returns the check with the given ID.
func (s *Service) Get(ctx context.Context, id string) (*Check, error) {
	check, err := s.store.GetCheck(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get check '%s': %w", id, err)
	}

	return check, nil
}

// GetByNumber returns the check with the given number on the given bank account.
func (s *Service) GetByNumber(ctx context.Context, bankAccountID string, number int) (*Check, error) {
	checks, err := s.List(ctx, Filter{BankAccountID: bankAccountID})
	if err != nil {
		return nil, err
	}

	for _, check := range checks {
		if check.Number == number {
			return check, nil
		}
	}

	return nil, fmt.Errorf("check #%d on bank account '%s': %w", number, bankAccountID, ErrNotFound)
}

// List returns the checks matching the given filter, ordered by bank account and then check number.
func (s *Service) List(ctx context.Context, filter Filter) ([]*Check, error) {
	all, err := s.store.ListChecks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list checks: %w", err)
	}

	var matched []*Check
	for _, check := range all {
		if filter.matches(check) {
			matched = append(matched, check)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].BankAccountID != matched[j].BankAccountID {
			return matched[i].BankAccountID < matched[j].BankAccountID
		}
		return matched[i].Number < matched[j].Number
	})

	return matched, nil
}

// UpdateAmount changes the amount of a draft check. This is the only change that rewrites the amount's words.
func (s *Service) UpdateAmount(ctx context.Context, caps Capabilities, id string, amountInput string) (*Check, error) {
	if err := caps.RequireWrite(); err != nil {
		return nil, err
	}

	check, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if check.Status != StatusDraft {
		return nil, fmt.Errorf("%w: the amount of check #%d cannot change once it is %s", ErrLocked, check.Number, check.Status)
	}

	amount, amountWords, err := convertAmount(amountInput)
	if err != nil {
		return nil, err
	}

	check.Amount = amount
	check.AmountWords = amountWords
	check.UpdatedAt = s.now()

	if err := s.store.SaveCheck(ctx, check); err != nil {
		return nil, fmt.Errorf("failed to save check #%d: %w", check.Number, err)
	}

	return check, nil
}

// Transition moves a check to the given status.
func (s *Service) Transition(ctx context.Context, caps Capabilities, id string, status Status) (*Check, error) {
	if err := caps.RequireWrite(); err != nil {
		return nil, err
	}

	check, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !check.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: check #%d cannot move from %s to %s", ErrInvalidTransition, check.Number, check.Status, status)
	}

	now := s.now()
	previous := check.Status
	check.Status = status
	check.UpdatedAt = now
	if status == StatusPrinted {
		check.PrintedAt = &now
	}

	if err := s.store.SaveCheck(ctx, check); err != nil {
		return nil, fmt.Errorf("failed to save check #%d: %w", check.Number, err)
	}

	s.logger.Info("changed check status",
		zap.String("checkID", check.ID),
		zap.Int("checkNumber", check.Number),
		zap.String("from", string(previous)),
		zap.String("to", string(status)),
	)

	return check, nil
}

// MarkPrinted records that the check has been printed.
func (s *Service) MarkPrinted(ctx context.Context, caps Capabilities, id string) (*Check, error) {
	return s.Transition(ctx, caps, id, StatusPrinted)
}

// Void voids the check.
func (s *Service) Void(ctx context.Context, caps Capabilities, id string) (*Check, error) {
	return s.Transition(ctx, caps, id, StatusVoid)
}

// Delete removes a check. Only drafts and voided checks may be removed.
func (s *Service) Delete(ctx context.Context, caps Capabilities, id string) error {
	if err := caps.RequireWrite(); err != nil {
		return err
	}

	check, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if check.Status != StatusDraft && check.Status != StatusVoid {
		return fmt.Errorf("%w: check #%d is %s; void it before deleting it", ErrLocked, check.Number, check.Status)
	}

	if err := s.store.DeleteCheck(ctx, id); err != nil {
		return fmt.Errorf("failed to delete check #%d: %w", check.Number, err)
	}

	s.logger.Info("deleted check", zap.String("checkID", id), zap.Int("checkNumber", check.Number))

	return nil
}

func convertAmount(amountInput string) (int64, string, error) {
	amount, err := currency.ParseAmount(amountInput)
	if err != nil {
		return 0, "", fmt.Errorf("enter a valid amount: %w", err)
	}

	if amount == 0 {
		return 0, "", fmt.Errorf("%w: amount must be greater than 0", ErrInvalidDraft)
	}

	amountWords, err := currency.ToWords(amount)
	if err != nil {
		return 0, "", fmt.Errorf("failed to write out amount: %w", err)
	}

	return amount, amountWords, nil
}

// IsNotFound reports whether the error is due to a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
