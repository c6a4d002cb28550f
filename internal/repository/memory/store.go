// 文件路径: internal/repository/memory/store.go
// 模块说明: 基于内存的只读数据集仓储，数据在会话启动时一次性生成。
package memory

import (
	"context"
	"slices"

	"github.com/creamcroissant/adminboard/internal/repository"
)

// Store wires in-memory repository implementations.
type Store struct {
	users    repository.UserRepository
	billings repository.BillingRepository
}

// NewStore constructs a store over already generated datasets. The slices
// must not be modified afterwards.
func NewStore(users []repository.User, billings []repository.Billing) *Store {
	return &Store{
		users:    newUserRepo(users),
		billings: newBillingRepo(billings),
	}
}

func (s *Store) Users() repository.UserRepository {
	return s.users
}

func (s *Store) Billings() repository.BillingRepository {
	return s.billings
}

type userRepo struct {
	rows  []repository.User
	index map[int64]int
}

func newUserRepo(rows []repository.User) *userRepo {
	index := make(map[int64]int, len(rows))
	for i, u := range rows {
		index[u.ID] = i
	}
	return &userRepo{rows: rows, index: index}
}

func (r *userRepo) All(ctx context.Context) ([]repository.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(r.rows), nil
}

func (r *userRepo) FindByID(ctx context.Context, id int64) (*repository.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	i, ok := r.index[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	user := r.rows[i]
	return &user, nil
}

type billingRepo struct {
	rows  []repository.Billing
	index map[int64]int
}

func newBillingRepo(rows []repository.Billing) *billingRepo {
	index := make(map[int64]int, len(rows))
	for i, b := range rows {
		index[b.ID] = i
	}
	return &billingRepo{rows: rows, index: index}
}

func (r *billingRepo) All(ctx context.Context) ([]repository.Billing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(r.rows), nil
}

func (r *billingRepo) FindByID(ctx context.Context, id int64) (*repository.Billing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	i, ok := r.index[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	billing := r.rows[i]
	return &billing, nil
}
