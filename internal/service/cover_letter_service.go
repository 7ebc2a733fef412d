// FILE: internal/service/cover_letter_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"resumeforge-be/internal/dto"
	"resumeforge-be/internal/entity"
	"resumeforge-be/internal/repository/specification"
	"resumeforge-be/internal/repository/unitofwork"
	"resumeforge-be/pkg/llm"
	"resumeforge-be/pkg/pricing"
)

type ICoverLetterService interface {
	Generate(ctx context.Context, userId uuid.UUID, req *dto.GenerateCoverLetterRequest) (*dto.GenerateCoverLetterResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowCoverLetterResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]*dto.CoverLetterListItem, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateCoverLetterRequest) error
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type coverLetterService struct {
	uowFactory         unitofwork.RepositoryFactory
	entitlementService EntitlementService
	llmProvider        llm.LLMProvider
}

func NewCoverLetterService(
	uowFactory unitofwork.RepositoryFactory,
	entitlementService EntitlementService,
	llmProvider llm.LLMProvider,
) ICoverLetterService {
	return &coverLetterService{
		uowFactory:         uowFactory,
		entitlementService: entitlementService,
		llmProvider:        llmProvider,
	}
}

func (s *coverLetterService) Generate(ctx context.Context, userId uuid.UUID, req *dto.GenerateCoverLetterRequest) (*dto.GenerateCoverLetterResponse, error) {
	if err := checkFeatureGate(ctx, s.entitlementService, userId, pricing.ActionCoverLetter); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	var resumeContext string
	if req.ResumeId != nil {
		resume, err := uow.ResumeRepository().FindOne(ctx,
			specification.ByID{ID: *req.ResumeId},
			specification.UserOwnedBy{UserID: userId},
		)
		if err != nil {
			return nil, err
		}
		if resume == nil {
			return nil, errors.New("resume not found")
		}
		resumeContext = summarizeResume(resume)
	}

	tone := req.Tone
	if tone == "" {
		tone = "professional"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Write a %s cover letter for the position of %s at %s.\n", tone, req.JobTitle, req.CompanyName)
	sb.WriteString("Three to four paragraphs, no placeholder brackets, ready to send.\n")
	if resumeContext != "" {
		sb.WriteString("\nCandidate background:\n" + resumeContext + "\n")
	}
	if req.JobDescription != "" {
		sb.WriteString("\nJob posting:\n" + req.JobDescription + "\n")
	}

	content, err := s.llmProvider.Generate(ctx, sb.String(), llm.WithTemperature(0.6))
	if err != nil {
		return nil, fmt.Errorf("cover letter generation failed: %w", err)
	}
	content = strings.TrimSpace(content)

	letter := &entity.CoverLetter{
		Id:          uuid.New(),
		UserId:      userId,
		ResumeId:    req.ResumeId,
		JobTitle:    req.JobTitle,
		CompanyName: req.CompanyName,
		Content:     content,
		Generated:   true,
		CreatedAt:   time.Now(),
	}
	if err := uow.CoverLetterRepository().Create(ctx, letter); err != nil {
		return nil, err
	}

	remaining, err := settleFeatureUse(ctx, s.entitlementService, userId, pricing.ActionCoverLetter)
	if err != nil {
		return nil, err
	}

	return &dto.GenerateCoverLetterResponse{
		Id:               letter.Id,
		Content:          content,
		RemainingCredits: remaining,
	}, nil
}

func (s *coverLetterService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowCoverLetterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	letter, err := uow.CoverLetterRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if letter == nil {
		return nil, errors.New("cover letter not found")
	}

	return &dto.ShowCoverLetterResponse{
		Id:          letter.Id,
		ResumeId:    letter.ResumeId,
		JobTitle:    letter.JobTitle,
		CompanyName: letter.CompanyName,
		Content:     letter.Content,
		Generated:   letter.Generated,
		CreatedAt:   letter.CreatedAt,
		UpdatedAt:   letter.UpdatedAt,
	}, nil
}

func (s *coverLetterService) List(ctx context.Context, userId uuid.UUID) ([]*dto.CoverLetterListItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	letters, err := uow.CoverLetterRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.CoverLetterListItem, 0, len(letters))
	for _, l := range letters {
		items = append(items, &dto.CoverLetterListItem{
			Id:          l.Id,
			JobTitle:    l.JobTitle,
			CompanyName: l.CompanyName,
			UpdatedAt:   l.UpdatedAt,
		})
	}
	return items, nil
}

func (s *coverLetterService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateCoverLetterRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	letter, err := uow.CoverLetterRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if letter == nil {
		return errors.New("cover letter not found")
	}

	now := time.Now()
	letter.Content = req.Content
	letter.Generated = false
	letter.UpdatedAt = &now
	return uow.CoverLetterRepository().Update(ctx, letter)
}

func (s *coverLetterService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	letter, err := uow.CoverLetterRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if letter == nil {
		return errors.New("cover letter not found")
	}
	return uow.CoverLetterRepository().Delete(ctx, id)
}

// summarizeResume flattens the structured content into prompt context.
func summarizeResume(resume *entity.Resume) string {
	var sb strings.Builder
	if resume.Content.Summary != "" {
		sb.WriteString(resume.Content.Summary + "\n")
	}
	for _, exp := range resume.Content.Experience {
		fmt.Fprintf(&sb, "%s at %s (%s - %s)\n", exp.Title, exp.Company, exp.StartDate, exp.EndDate)
		for _, b := range exp.Bullets {
			sb.WriteString("- " + b + "\n")
		}
	}
	if len(resume.Content.Skills) > 0 {
		sb.WriteString("Skills: " + strings.Join(resume.Content.Skills, ", ") + "\n")
	}
	return sb.String()
}
