package contract

import (
	"context"

	"github.com/google/uuid"

	"resumeforge-be/internal/entity"
	"resumeforge-be/internal/repository/specification"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, subscription *entity.UserSubscription) error

	// Update persists the row only when the in-memory Version matches the
	// stored one, then bumps it. Returns entity-level ErrVersionConflict
	// when a newer server copy exists.
	Update(ctx context.Context, subscription *entity.UserSubscription) error

	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserSubscription, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserSubscription, error)

	// FindCurrent resolves the user's governing subscription: the most
	// recent active (or canceled-but-unexpired) record.
	FindCurrent(ctx context.Context, userId uuid.UUID) (*entity.UserSubscription, error)

	CountActiveSubscribers(ctx context.Context) (int, error)
}
