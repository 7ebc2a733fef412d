package mapper

import (
	"encoding/json"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"

	"resumeforge-be/internal/entity"
	"resumeforge-be/internal/model"
)

type ResumeMapper struct{}

func NewResumeMapper() *ResumeMapper {
	return &ResumeMapper{}
}

// ToEntity maps a resume row. Corrupt JSONB content yields an empty body and
// ok=false so callers can skip or replace the record instead of failing the
// whole listing.
func (m *ResumeMapper) ToEntity(r *model.Resume) (*entity.Resume, bool) {
	if r == nil {
		return nil, false
	}

	var content entity.ResumeContent
	ok := true
	if len(r.Content) > 0 {
		if err := json.Unmarshal(r.Content, &content); err != nil {
			content = entity.ResumeContent{}
			ok = false
		}
	}

	return &entity.Resume{
		Id:         r.Id,
		UserId:     r.UserId,
		Title:      r.Title,
		TemplateId: r.TemplateId,
		Content:    content,
		SourceFile: r.SourceFile,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}, ok
}

func (m *ResumeMapper) ToModel(r *entity.Resume) (*model.Resume, error) {
	if r == nil {
		return nil, nil
	}

	raw, err := json.Marshal(r.Content)
	if err != nil {
		return nil, err
	}

	return &model.Resume{
		Id:         r.Id,
		UserId:     r.UserId,
		Title:      r.Title,
		TemplateId: r.TemplateId,
		Content:    datatypes.JSON(raw),
		SourceFile: r.SourceFile,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}, nil
}

func (m *ResumeMapper) EmbeddingToEntity(e *model.ResumeEmbedding) *entity.ResumeEmbedding {
	if e == nil {
		return nil
	}
	return &entity.ResumeEmbedding{
		Id:             e.Id,
		ResumeId:       e.ResumeId,
		Document:       e.Document,
		EmbeddingValue: e.EmbeddingValue.Slice(),
		ChunkIndex:     e.ChunkIndex,
		CreatedAt:      e.CreatedAt,
	}
}

func (m *ResumeMapper) EmbeddingToModel(e *entity.ResumeEmbedding) *model.ResumeEmbedding {
	if e == nil {
		return nil
	}
	return &model.ResumeEmbedding{
		Id:             e.Id,
		ResumeId:       e.ResumeId,
		Document:       e.Document,
		EmbeddingValue: pgvector.NewVector(e.EmbeddingValue),
		ChunkIndex:     e.ChunkIndex,
		CreatedAt:      e.CreatedAt,
	}
}
