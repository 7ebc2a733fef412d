// FILE: internal/service/session_service.go
// View-state persistence so a returning session resumes where it left off.
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"resumeforge-be/internal/dto"
	"resumeforge-be/internal/repository/memory"
	"resumeforge-be/pkg/store"
)

type ISessionService interface {
	SaveViewState(ctx context.Context, userId uuid.UUID, req *dto.SaveViewStateRequest) (*dto.ViewStateResponse, error)
	GetViewState(ctx context.Context, userId uuid.UUID) (*dto.ViewStateResponse, error)
	ClearViewState(ctx context.Context, userId uuid.UUID)
}

type sessionService struct {
	local *memory.ViewStateRepository
	redis *memory.RedisViewStateRepository // nil when Redis is not configured
}

func NewSessionService(local *memory.ViewStateRepository, redis *memory.RedisViewStateRepository) ISessionService {
	return &sessionService{
		local: local,
		redis: redis,
	}
}

func (s *sessionService) SaveViewState(ctx context.Context, userId uuid.UUID, req *dto.SaveViewStateRequest) (*dto.ViewStateResponse, error) {
	state := &store.ViewState{
		UserID:      userId.String(),
		CurrentView: req.CurrentView,
		TemplateID:  req.TemplateId,
		ResumeID:    req.ResumeId,
	}

	s.local.Save(state)
	if s.redis != nil {
		if err := s.redis.SaveCtx(ctx, state); err != nil {
			// Local cache still has it; Redis catches up on the next save.
			fmt.Printf("[WARN] failed to persist view state to redis: %v\n", err)
		}
	}

	return toViewStateResponse(state, true), nil
}

func (s *sessionService) GetViewState(ctx context.Context, userId uuid.UUID) (*dto.ViewStateResponse, error) {
	key := userId.String()

	if state, found := s.local.Get(key); found {
		return toViewStateResponse(state, true), nil
	}
	if s.redis != nil {
		if state, found := s.redis.GetCtx(ctx, key); found {
			s.local.Save(state)
			return toViewStateResponse(state, true), nil
		}
	}

	return toViewStateResponse(store.DefaultViewState(key), false), nil
}

func (s *sessionService) ClearViewState(ctx context.Context, userId uuid.UUID) {
	key := userId.String()
	s.local.Delete(key)
	if s.redis != nil {
		if err := s.redis.DeleteCtx(ctx, key); err != nil {
			// Entry expires via TTL anyway.
			return
		}
	}
}

func toViewStateResponse(state *store.ViewState, restored bool) *dto.ViewStateResponse {
	return &dto.ViewStateResponse{
		CurrentView:   state.CurrentView,
		TemplateId:    state.TemplateID,
		ResumeId:      state.ResumeID,
		SchemaVersion: state.SchemaVersion,
		Restored:      restored,
	}
}
