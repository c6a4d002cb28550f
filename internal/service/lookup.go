package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/creamcroissant/adminboard/internal/repository"
)

// Directory resolves single records for the detail views.
type Directory struct {
	Users    repository.UserRepository
	Billings repository.BillingRepository
}

// User returns the user with id.
func (d Directory) User(ctx context.Context, id int64) (*repository.User, error) {
	u, err := d.Users.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}

// Billing returns the bill with id.
func (d Directory) Billing(ctx context.Context, id int64) (*repository.Billing, error) {
	b, err := d.Billings.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: billing %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("find billing: %w", err)
	}
	return b, nil
}
