package contract

import (
	"context"

	"github.com/google/uuid"

	"resumeforge-be/internal/entity"
	"resumeforge-be/internal/repository/specification"
)

// CreditRepository persists the append-only ledger. No update or delete:
// transactions and usage records are write-once.
type CreditRepository interface {
	CreateTransaction(ctx context.Context, tx *entity.CreditTransaction) error
	FindTransactions(ctx context.Context, specs ...specification.Specification) ([]*entity.CreditTransaction, error)

	CreateUsageRecord(ctx context.Context, record *entity.UsageRecord) error
	FindUsageRecords(ctx context.Context, specs ...specification.Specification) ([]*entity.UsageRecord, error)
	CountUsageByAction(ctx context.Context, userId uuid.UUID, action string) (int64, error)
}
