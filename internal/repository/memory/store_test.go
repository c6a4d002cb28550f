package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creamcroissant/adminboard/internal/repository"
)

func TestStoreFindByID(t *testing.T) {
	store := NewStore(
		[]repository.User{{ID: 1, FirstName: "Ana"}, {ID: 7, FirstName: "Luis"}},
		[]repository.Billing{{ID: 3, UserName: "Ana Ruiz"}},
	)
	ctx := context.Background()

	user, err := store.Users().FindByID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "Luis", user.FirstName)

	_, err = store.Users().FindByID(ctx, 99)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	bill, err := store.Billings().FindByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Ana Ruiz", bill.UserName)

	_, err = store.Billings().FindByID(ctx, 4)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStoreAllReturnsCopies(t *testing.T) {
	store := NewStore([]repository.User{{ID: 1, FirstName: "Ana"}}, nil)

	users, err := store.Users().All(context.Background())
	require.NoError(t, err)
	users[0].FirstName = "changed"

	again, err := store.Users().All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ana", again[0].FirstName)
}

func TestStoreHonoursCancelledContext(t *testing.T) {
	store := NewStore(nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Billings().All(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
