package unitofwork

import (
	"context"

	"resumeforge-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	SubscriptionRepository() contract.SubscriptionRepository
	CreditRepository() contract.CreditRepository
	ResumeRepository() contract.ResumeRepository
	ResumeEmbeddingRepository() contract.ResumeEmbeddingRepository
	CoverLetterRepository() contract.CoverLetterRepository
	TemplateRepository() contract.TemplateRepository
	PaymentOrderRepository() contract.PaymentOrderRepository
}
