package repository

import "context"

// RepositoryFactory creates repository instances bound to one transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	StoreRepo() StoreRepository
	ProductRepo() ProductRepository
	OrderRepo() OrderRepository
}

// TransactionManager runs a unit of work inside a single database
// transaction. Multi-row writes (order creation and its lines) depend on it
// for the no-partial-persistence guarantee.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
