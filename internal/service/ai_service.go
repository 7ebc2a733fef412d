// FILE: internal/service/ai_service.go
// AI-backed actions: rewrite, bullet optimization, CV regeneration, job match.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"resumeforge-be/internal/dto"
	"resumeforge-be/internal/entity"
	"resumeforge-be/internal/repository/specification"
	"resumeforge-be/internal/repository/unitofwork"
	"resumeforge-be/pkg/embedding"
	"resumeforge-be/pkg/llm"
	"resumeforge-be/pkg/pricing"
)

type IAiService interface {
	Rewrite(ctx context.Context, userId uuid.UUID, req *dto.RewriteRequest) (*dto.RewriteResponse, error)
	OptimizeBullets(ctx context.Context, userId uuid.UUID, req *dto.BulletOptimizationRequest) (*dto.BulletOptimizationResponse, error)
	RegenerateCv(ctx context.Context, userId uuid.UUID, req *dto.CvRegenerationRequest) (*dto.CvRegenerationResponse, error)
	JobMatch(ctx context.Context, userId uuid.UUID, req *dto.JobMatchRequest) (*dto.JobMatchResponse, error)
}

type aiService struct {
	uowFactory         unitofwork.RepositoryFactory
	entitlementService EntitlementService
	publisherService   IPublisherService
	llmProvider        llm.LLMProvider
	embeddingProvider  embedding.EmbeddingProvider
}

func NewAiService(
	uowFactory unitofwork.RepositoryFactory,
	entitlementService EntitlementService,
	publisherService IPublisherService,
	llmProvider llm.LLMProvider,
	embeddingProvider embedding.EmbeddingProvider,
) IAiService {
	return &aiService{
		uowFactory:         uowFactory,
		entitlementService: entitlementService,
		publisherService:   publisherService,
		llmProvider:        llmProvider,
		embeddingProvider:  embeddingProvider,
	}
}

func (s *aiService) Rewrite(ctx context.Context, userId uuid.UUID, req *dto.RewriteRequest) (*dto.RewriteResponse, error) {
	if err := checkFeatureGate(ctx, s.entitlementService, userId, pricing.ActionAiRewrite); err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(`Rewrite the following resume text to be more impactful and concise.
Keep the factual content, improve the wording. Return only the rewritten text.

%s`, req.Text)
	if req.Instruction != "" {
		prompt += "\n\nAdditional direction: " + req.Instruction
	}

	rewritten, err := s.llmProvider.Generate(ctx, prompt, llm.WithTemperature(0.4))
	if err != nil {
		return nil, fmt.Errorf("rewrite generation failed: %w", err)
	}

	remaining, err := settleFeatureUse(ctx, s.entitlementService, userId, pricing.ActionAiRewrite)
	if err != nil {
		return nil, err
	}

	return &dto.RewriteResponse{
		Text:             strings.TrimSpace(rewritten),
		RemainingCredits: remaining,
	}, nil
}

func (s *aiService) OptimizeBullets(ctx context.Context, userId uuid.UUID, req *dto.BulletOptimizationRequest) (*dto.BulletOptimizationResponse, error) {
	if err := checkFeatureGate(ctx, s.entitlementService, userId, pricing.ActionBulletOptimization); err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = "the target role"
	}
	prompt := fmt.Sprintf(`Optimize these resume bullet points for %s.
Start each with a strong action verb and quantify impact where possible.
Return exactly one bullet per line, no numbering, same count as the input.

%s`, role, strings.Join(req.Bullets, "\n"))

	raw, err := s.llmProvider.Generate(ctx, prompt, llm.WithTemperature(0.4))
	if err != nil {
		return nil, fmt.Errorf("bullet optimization failed: %w", err)
	}

	var bullets []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "-*• "))
		if line != "" {
			bullets = append(bullets, line)
		}
	}
	if len(bullets) == 0 {
		return nil, errors.New("model returned no usable bullets")
	}

	remaining, err := settleFeatureUse(ctx, s.entitlementService, userId, pricing.ActionBulletOptimization)
	if err != nil {
		return nil, err
	}

	return &dto.BulletOptimizationResponse{
		Bullets:          bullets,
		RemainingCredits: remaining,
	}, nil
}

func (s *aiService) RegenerateCv(ctx context.Context, userId uuid.UUID, req *dto.CvRegenerationRequest) (*dto.CvRegenerationResponse, error) {
	if err := checkFeatureGate(ctx, s.entitlementService, userId, pricing.ActionCvRegeneration); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	resume, err := uow.ResumeRepository().FindOne(ctx,
		specification.ByID{ID: req.ResumeId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if resume == nil {
		return nil, errors.New("resume not found")
	}

	contentJson, err := json.Marshal(resume.Content)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(`Rewrite this resume as JSON with the same schema
(summary, experience[company,title,start_date,end_date,bullets], education[school,degree,year], skills).
Improve wording throughout; do not invent employers or dates. Return only JSON.

%s`, string(contentJson))
	if req.Instruction != "" {
		prompt += "\n\nDirection: " + req.Instruction
	}

	raw, err := s.llmProvider.Generate(ctx, prompt, llm.WithTemperature(0.5))
	if err != nil {
		return nil, fmt.Errorf("cv regeneration failed: %w", err)
	}

	var regenerated entity.ResumeContent
	if err := json.Unmarshal([]byte(extractJson(raw)), &regenerated); err != nil {
		return nil, fmt.Errorf("model returned invalid resume content: %w", err)
	}

	now := time.Now()
	resume.Content = regenerated
	resume.UpdatedAt = &now
	if err := uow.ResumeRepository().Update(ctx, resume); err != nil {
		return nil, err
	}

	remaining, err := settleFeatureUse(ctx, s.entitlementService, userId, pricing.ActionCvRegeneration)
	if err != nil {
		return nil, err
	}

	// Content changed, refresh the vectors.
	if s.publisherService != nil {
		payload, _ := json.Marshal(dto.PublishEmbedResumeMessage{ResumeId: resume.Id})
		if err := s.publisherService.Publish(ctx, payload); err != nil {
			fmt.Printf("[WARN] failed to queue embedding for %s: %v\n", resume.Id, err)
		}
	}

	return &dto.CvRegenerationResponse{
		ResumeId:         resume.Id,
		RemainingCredits: remaining,
	}, nil
}

func (s *aiService) JobMatch(ctx context.Context, userId uuid.UUID, req *dto.JobMatchRequest) (*dto.JobMatchResponse, error) {
	if err := checkFeatureGate(ctx, s.entitlementService, userId, pricing.ActionJobMatch); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	resume, err := uow.ResumeRepository().FindOne(ctx,
		specification.ByID{ID: req.ResumeId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if resume == nil {
		return nil, errors.New("resume not found")
	}

	embResp, err := s.embeddingProvider.Generate(req.JobDescription, "retrieval_query")
	if err != nil {
		return nil, fmt.Errorf("job description embedding failed: %w", err)
	}

	scored, err := uow.ResumeEmbeddingRepository().SearchSimilarWithScore(
		ctx, resume.Id, embResp.Embedding.Values, 5, 0.0,
	)
	if err != nil {
		return nil, err
	}
	if len(scored) == 0 {
		return nil, errors.New("resume has no embeddings yet, try again shortly")
	}

	var total float64
	sections := make([]dto.MatchedSection, 0, len(scored))
	for _, sc := range scored {
		total += sc.Similarity
		sections = append(sections, dto.MatchedSection{
			Text:  sc.Embedding.Document,
			Score: sc.Similarity,
		})
	}

	remaining, err := settleFeatureUse(ctx, s.entitlementService, userId, pricing.ActionJobMatch)
	if err != nil {
		return nil, err
	}

	return &dto.JobMatchResponse{
		Score:            total / float64(len(scored)),
		MatchedSections:  sections,
		RemainingCredits: remaining,
	}, nil
}

// extractJson strips markdown fences the model sometimes wraps around JSON.
func extractJson(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSuffix(raw, "```")
	}
	return strings.TrimSpace(raw)
}
