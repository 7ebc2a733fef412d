// FILE: internal/service/resume_service.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"resumeforge-be/internal/dto"
	"resumeforge-be/internal/entity"
	"resumeforge-be/internal/repository/specification"
	"resumeforge-be/internal/repository/unitofwork"
	"resumeforge-be/pkg/events"
	pktNats "resumeforge-be/pkg/nats"
	"resumeforge-be/pkg/pricing"
)

type IResumeService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateResumeRequest) (*dto.CreateResumeResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowResumeResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]*dto.ResumeListItem, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateResumeRequest) (*dto.UpdateResumeResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error

	// SetTemplate switches the resume's template, enforcing plan access.
	SetTemplate(ctx context.Context, userId uuid.UUID, req *dto.SetTemplateRequest) error

	// Upload imports an extracted document. Costs resume_upload credits.
	Upload(ctx context.Context, userId uuid.UUID, req *dto.UploadResumeRequest) (*dto.UploadResumeResponse, error)
}

type resumeService struct {
	uowFactory         unitofwork.RepositoryFactory
	entitlementService EntitlementService
	publisherService   IPublisherService
	eventPublisher     *pktNats.Publisher
}

func NewResumeService(
	uowFactory unitofwork.RepositoryFactory,
	entitlementService EntitlementService,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
) IResumeService {
	return &resumeService{
		uowFactory:         uowFactory,
		entitlementService: entitlementService,
		publisherService:   publisherService,
		eventPublisher:     eventPublisher,
	}
}

func (s *resumeService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateResumeRequest) (*dto.CreateResumeResponse, error) {
	allowed, err := s.entitlementService.CanAccessTemplate(ctx, userId, req.TemplateId)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, errors.New("template requires an upgraded plan")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	resume := &entity.Resume{
		Id:         uuid.New(),
		UserId:     userId,
		Title:      req.Title,
		TemplateId: req.TemplateId,
		Content:    req.Content,
		CreatedAt:  time.Now(),
	}
	if err := uow.ResumeRepository().Create(ctx, resume); err != nil {
		return nil, err
	}

	s.queueEmbedding(ctx, resume.Id)

	return &dto.CreateResumeResponse{Id: resume.Id}, nil
}

func (s *resumeService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowResumeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	resume, err := uow.ResumeRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if resume == nil {
		return nil, errors.New("resume not found")
	}

	return &dto.ShowResumeResponse{
		Id:         resume.Id,
		Title:      resume.Title,
		TemplateId: resume.TemplateId,
		Content:    resume.Content,
		SourceFile: resume.SourceFile,
		CreatedAt:  resume.CreatedAt,
		UpdatedAt:  resume.UpdatedAt,
	}, nil
}

func (s *resumeService) List(ctx context.Context, userId uuid.UUID) ([]*dto.ResumeListItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	resumes, err := uow.ResumeRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.ResumeListItem, 0, len(resumes))
	for _, r := range resumes {
		items = append(items, &dto.ResumeListItem{
			Id:         r.Id,
			Title:      r.Title,
			TemplateId: r.TemplateId,
			UpdatedAt:  r.UpdatedAt,
		})
	}
	return items, nil
}

func (s *resumeService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateResumeRequest) (*dto.UpdateResumeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	resume, err := uow.ResumeRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if resume == nil {
		return nil, errors.New("resume not found")
	}

	if req.TemplateId != resume.TemplateId {
		allowed, err := s.entitlementService.CanAccessTemplate(ctx, userId, req.TemplateId)
		if err != nil {
			return nil, err
		}
		if !allowed {
			return nil, errors.New("template requires an upgraded plan")
		}
	}

	now := time.Now()
	resume.Title = req.Title
	resume.TemplateId = req.TemplateId
	resume.Content = req.Content
	resume.UpdatedAt = &now

	if err := uow.ResumeRepository().Update(ctx, resume); err != nil {
		return nil, err
	}

	s.queueEmbedding(ctx, resume.Id)

	return &dto.UpdateResumeResponse{Id: resume.Id}, nil
}

func (s *resumeService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	resume, err := uow.ResumeRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if resume == nil {
		return errors.New("resume not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ResumeEmbeddingRepository().DeleteByResumeId(ctx, id); err != nil {
		return err
	}
	if err := uow.ResumeRepository().Delete(ctx, id); err != nil {
		return err
	}

	return uow.Commit()
}

func (s *resumeService) SetTemplate(ctx context.Context, userId uuid.UUID, req *dto.SetTemplateRequest) error {
	allowed, err := s.entitlementService.CanAccessTemplate(ctx, userId, req.TemplateId)
	if err != nil {
		return err
	}
	if !allowed {
		return errors.New("template requires an upgraded plan")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	resume, err := uow.ResumeRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if resume == nil {
		return errors.New("resume not found")
	}

	now := time.Now()
	resume.TemplateId = req.TemplateId
	resume.UpdatedAt = &now
	return uow.ResumeRepository().Update(ctx, resume)
}

func (s *resumeService) Upload(ctx context.Context, userId uuid.UUID, req *dto.UploadResumeRequest) (*dto.UploadResumeResponse, error) {
	if err := checkFeatureGate(ctx, s.entitlementService, userId, pricing.ActionResumeUpload); err != nil {
		return nil, err
	}

	title := req.Title
	if title == "" {
		title = req.FileName
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	fileName := req.FileName
	resume := &entity.Resume{
		Id:         uuid.New(),
		UserId:     userId,
		Title:      title,
		TemplateId: "classic",
		Content: entity.ResumeContent{
			// Raw import lands in the summary; AI regeneration structures it.
			Summary: req.Text,
		},
		SourceFile: &fileName,
		CreatedAt:  time.Now(),
	}
	if err := uow.ResumeRepository().Create(ctx, resume); err != nil {
		return nil, err
	}

	remaining, err := settleFeatureUse(ctx, s.entitlementService, userId, pricing.ActionResumeUpload)
	if err != nil {
		return nil, err
	}

	s.queueEmbedding(ctx, resume.Id)

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TypeResumeUploaded,
			Data: map[string]interface{}{
				"user_id":     userId,
				"resume_id":   resume.Id,
				"file_name":   req.FileName,
				"occurred_at": time.Now(),
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish %s event: %v\n", events.TypeResumeUploaded, err)
		}
	}

	return &dto.UploadResumeResponse{
		Id:               resume.Id,
		RemainingCredits: remaining,
	}, nil
}

// queueEmbedding hands the resume to the async embedding worker. Failures
// only cost job-match freshness, never the write itself.
func (s *resumeService) queueEmbedding(ctx context.Context, resumeId uuid.UUID) {
	if s.publisherService == nil {
		return
	}
	payload := dto.PublishEmbedResumeMessage{ResumeId: resumeId}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		fmt.Printf("[WARN] failed to marshal embed message for %s: %v\n", resumeId, err)
		return
	}
	if err := s.publisherService.Publish(ctx, payloadJson); err != nil {
		fmt.Printf("[WARN] failed to queue embedding for %s: %v\n", resumeId, err)
	}
}
