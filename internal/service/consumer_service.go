// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"

	"resumeforge-be/internal/dto"
	"resumeforge-be/internal/entity"
	"resumeforge-be/internal/repository/specification"
	"resumeforge-be/internal/repository/unitofwork"
	"resumeforge-be/pkg/embedding"
	"resumeforge-be/pkg/utils"
)

const (
	embedChunkSize = 1500
	embedOverlap   = 200
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedResumeMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		// Invalid payloads would retry forever, drop them.
		msg.Ack()
		return
	}

	log.Printf("[INFO] Embedding resume %s", payload.ResumeId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	resume, err := uow.ResumeRepository().FindOne(ctx, specification.ByID{ID: payload.ResumeId})
	if err != nil {
		log.Printf("[ERROR] Failed to load resume %s: %v", payload.ResumeId, err)
		msg.Nack()
		return
	}
	if resume == nil {
		// Deleted before the worker got to it.
		log.Printf("[WARN] Resume not found: %s", payload.ResumeId)
		msg.Ack()
		return
	}

	document := flattenResume(resume)
	chunks := utils.SplitText(document, embedChunkSize, embedOverlap)

	embeddings := make([]*entity.ResumeEmbedding, 0, len(chunks))
	for i, chunk := range chunks {
		resp, err := cs.embeddingProvider.Generate(chunk, "retrieval_document")
		if err != nil {
			log.Printf("[ERROR] Embedding chunk %d of resume %s failed: %v", i, payload.ResumeId, err)
			msg.Nack()
			return
		}
		embeddings = append(embeddings, &entity.ResumeEmbedding{
			Id:             uuid.New(),
			ResumeId:       resume.Id,
			Document:       chunk,
			EmbeddingValue: resp.Embedding.Values,
			ChunkIndex:     i,
			CreatedAt:      time.Now(),
		})
	}

	// Replace atomically so a reader never sees a half-indexed resume.
	if err := uow.Begin(ctx); err != nil {
		log.Printf("[ERROR] Failed to begin transaction: %v", err)
		msg.Nack()
		return
	}
	defer uow.Rollback()

	if err := uow.ResumeEmbeddingRepository().DeleteByResumeId(ctx, resume.Id); err != nil {
		log.Printf("[ERROR] Failed to clear old embeddings for %s: %v", resume.Id, err)
		msg.Nack()
		return
	}
	if err := uow.ResumeEmbeddingRepository().CreateBulk(ctx, embeddings); err != nil {
		log.Printf("[ERROR] Failed to store embeddings for %s: %v", resume.Id, err)
		msg.Nack()
		return
	}
	if err := uow.Commit(); err != nil {
		log.Printf("[ERROR] Failed to commit embeddings for %s: %v", resume.Id, err)
		msg.Nack()
		return
	}

	log.Printf("[INFO] Stored %d embedding chunks for resume %s", len(embeddings), resume.Id)
	msg.Ack()
}

// flattenResume renders the structured content as one document for chunking.
func flattenResume(resume *entity.Resume) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Resume: %s\n\n", resume.Title)
	sb.WriteString(summarizeResume(resume))
	for _, edu := range resume.Content.Education {
		fmt.Fprintf(&sb, "%s, %s (%s)\n", edu.Degree, edu.School, edu.Year)
	}
	return sb.String()
}
