package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/jrh3k5/checkwriter/bank"
	"github.com/jrh3k5/checkwriter/check"
	"github.com/jrh3k5/checkwriter/vendors"
)

// ErrNotFound is returned when a record does not exist. It is the same error as check.ErrNotFound.
var ErrNotFound = check.ErrNotFound

// ErrInUse is returned when a record cannot be removed because checks still refer to it.
var ErrInUse = errors.New("record is in use")

type document struct {
	BankAccounts []*bank.Account   `yaml:"bank_accounts"`
	Vendors      []*vendors.Vendor `yaml:"vendors"`
	Checks       []*check.Check    `yaml:"checks"`
}

// FileStore keeps all records in a single YAML file.
// Every call reads the file fresh, so returned records are copies that are safe to modify.
type FileStore struct {
	path string
	mu   sync.Mutex
}

var _ check.Store = (*FileStore)(nil)

// NewFileStore builds a store backed by the file at the given path. The file is created on first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// GetAccount returns the bank account with the given ID.
func (f *FileStore) GetAccount(ctx context.Context, id string) (*bank.Account, error) {
	doc, err := f.read()
	if err != nil {
		return nil, err
	}

	for _, account := range doc.BankAccounts {
		if account.ID == id {
			return account, nil
		}
	}

	return nil, fmt.Errorf("bank account '%s': %w", id, ErrNotFound)
}

// FindAccount returns the bank account whose ID or name (case-insensitive) matches the given reference.
func (f *FileStore) FindAccount(ctx context.Context, ref string) (*bank.Account, error) {
	doc, err := f.read()
	if err != nil {
		return nil, err
	}

	for _, account := range doc.BankAccounts {
		if account.ID == ref || strings.EqualFold(account.Name, ref) {
			return account, nil
		}
	}

	return nil, fmt.Errorf("bank account '%s': %w", ref, ErrNotFound)
}

// ListAccounts returns every bank account.
func (f *FileStore) ListAccounts(ctx context.Context) ([]*bank.Account, error) {
	doc, err := f.read()
	if err != nil {
		return nil, err
	}

	return doc.BankAccounts, nil
}

// SaveAccount inserts or replaces a bank account.
func (f *FileStore) SaveAccount(ctx context.Context, account *bank.Account) error {
	return f.update(func(doc *document) error {
		for i, existing := range doc.BankAccounts {
			if existing.ID == account.ID {
				doc.BankAccounts[i] = account
				return nil
			}
		}

		doc.BankAccounts = append(doc.BankAccounts, account)
		return nil
	})
}

// DeleteAccount removes the bank account with the given ID.
// An account that checks have been written on is kept so those checks still resolve.
func (f *FileStore) DeleteAccount(ctx context.Context, id string) error {
	return f.update(func(doc *document) error {
		var checkCount int
		for _, c := range doc.Checks {
			if c.BankAccountID == id {
				checkCount++
			}
		}

		for i, existing := range doc.BankAccounts {
			if existing.ID != id {
				continue
			}

			if checkCount > 0 {
				return fmt.Errorf("%w: bank account '%s' has %d check(s); delete them first", ErrInUse, existing.Name, checkCount)
			}

			doc.BankAccounts = append(doc.BankAccounts[:i], doc.BankAccounts[i+1:]...)
			return nil
		}

		return fmt.Errorf("bank account '%s': %w", id, ErrNotFound)
	})
}

// GetVendor returns the vendor with the given ID.
func (f *FileStore) GetVendor(ctx context.Context, id string) (*vendors.Vendor, error) {
	doc, err := f.read()
	if err != nil {
		return nil, err
	}

	for _, v := range doc.Vendors {
		if v.ID == id {
			return v, nil
		}
	}

	return nil, fmt.Errorf("vendor '%s': %w", id, ErrNotFound)
}

// FindVendor returns the vendor whose ID or name (case-insensitive) matches the given reference.
func (f *FileStore) FindVendor(ctx context.Context, ref string) (*vendors.Vendor, error) {
	doc, err := f.read()
	if err != nil {
		return nil, err
	}

	for _, v := range doc.Vendors {
		if v.ID == ref || strings.EqualFold(v.Name, ref) {
			return v, nil
		}
	}

	return nil, fmt.Errorf("vendor '%s': %w", ref, ErrNotFound)
}

// ListVendors returns every vendor.
func (f *FileStore) ListVendors(ctx context.Context) ([]*vendors.Vendor, error) {
	doc, err := f.read()
	if err != nil {
		return nil, err
	}

	return doc.Vendors, nil
}

// SaveVendor inserts or replaces a vendor.
func (f *FileStore) SaveVendor(ctx context.Context, v *vendors.Vendor) error {
	return f.update(func(doc *document) error {
		for i, existing := range doc.Vendors {
			if existing.ID == v.ID {
				doc.Vendors[i] = v
				return nil
			}
		}

		doc.Vendors = append(doc.Vendors, v)
		return nil
	})
}

// DeleteVendor removes the vendor with the given ID.
// Checks written to the vendor keep their payee but no longer refer to the vendor.
func (f *FileStore) DeleteVendor(ctx context.Context, id string) error {
	return f.update(func(doc *document) error {
		for i, existing := range doc.Vendors {
			if existing.ID != id {
				continue
			}

			doc.Vendors = append(doc.Vendors[:i], doc.Vendors[i+1:]...)
			for _, c := range doc.Checks {
				if c.VendorID == id {
					c.VendorID = ""
				}
			}

			return nil
		}

		return fmt.Errorf("vendor '%s': %w", id, ErrNotFound)
	})
}

// GetCheck returns the check with the given ID.
func (f *FileStore) GetCheck(ctx context.Context, id string) (*check.Check, error) {
	doc, err := f.read()
	if err != nil {
		return nil, err
	}

	for _, c := range doc.Checks {
		if c.ID == id {
			return c, nil
		}
	}

	return nil, fmt.Errorf("check '%s': %w", id, ErrNotFound)
}

// ListChecks returns every check.
func (f *FileStore) ListChecks(ctx context.Context) ([]*check.Check, error) {
	doc, err := f.read()
	if err != nil {
		return nil, err
	}

	return doc.Checks, nil
}

// SaveCheck replaces an existing check.
func (f *FileStore) SaveCheck(ctx context.Context, c *check.Check) error {
	return f.update(func(doc *document) error {
		for i, existing := range doc.Checks {
			if existing.ID == c.ID {
				doc.Checks[i] = c
				return nil
			}
		}

		return fmt.Errorf("check '%s': %w", c.ID, ErrNotFound)
	})
}

// CreateCheck adds a new check and stores the bank account whose next check number it consumed, in one write.
func (f *FileStore) CreateCheck(ctx context.Context, c *check.Check, account *bank.Account) error {
	return f.update(func(doc *document) error {
		accountIndex := -1
		for i, existing := range doc.BankAccounts {
			if existing.ID == account.ID {
				accountIndex = i
				break
			}
		}

		if accountIndex < 0 {
			return fmt.Errorf("bank account '%s': %w", account.ID, ErrNotFound)
		}

		for _, existing := range doc.Checks {
			if existing.BankAccountID == c.BankAccountID && existing.Number == c.Number {
				return fmt.Errorf("check #%d already exists for bank account '%s'", c.Number, account.Name)
			}
		}

		doc.BankAccounts[accountIndex] = account
		doc.Checks = append(doc.Checks, c)

		return nil
	})
}

// DeleteCheck removes the check with the given ID.
func (f *FileStore) DeleteCheck(ctx context.Context, id string) error {
	return f.update(func(doc *document) error {
		for i, existing := range doc.Checks {
			if existing.ID == id {
				doc.Checks = append(doc.Checks[:i], doc.Checks[i+1:]...)
				return nil
			}
		}

		return fmt.Errorf("check '%s': %w", id, ErrNotFound)
	})
}

func (f *FileStore) read() (*document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.readLocked()
}

func (f *FileStore) readLocked() (*document, error) {
	fileBytes, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return &document{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to read data file '%s': %w", f.path, err)
	}

	doc := &document{}
	if err := yaml.Unmarshal(fileBytes, doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal YAML in data file '%s': %w", f.path, err)
	}

	return doc, nil
}

func (f *FileStore) update(mutate func(doc *document) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.readLocked()
	if err != nil {
		return err
	}

	if err := mutate(doc); err != nil {
		return err
	}

	fileBytes, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal data file: %w", err)
	}

	// Written beside the target and renamed into place so readers never see a partial file.
	tempFile, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary data file: %w", err)
	}
	defer os.Remove(tempFile.Name())

	if _, err := tempFile.Write(fileBytes); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary data file '%s': %w", tempFile.Name(), err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary data file '%s': %w", tempFile.Name(), err)
	}

	if err := os.Rename(tempFile.Name(), f.path); err != nil {
		return fmt.Errorf("failed to replace data file '%s': %w", f.path, err)
	}

	return nil
}
