package repository

import "context"

// UserRepository exposes the generated users dataset.
type UserRepository interface {
	All(ctx context.Context) ([]User, error)
	FindByID(ctx context.Context, id int64) (*User, error)
}

// BillingRepository exposes the generated billing dataset.
type BillingRepository interface {
	All(ctx context.Context) ([]Billing, error)
	FindByID(ctx context.Context, id int64) (*Billing, error)
}
