package unitofwork

import "context"

// RepositoryFactory hands out fresh units of work. Services create one per
// request so transactional state never leaks between calls.
type RepositoryFactory interface {
	NewUnitOfWork(ctx context.Context) UnitOfWork
}
