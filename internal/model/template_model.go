package model

import (
	"time"

	"github.com/google/uuid"
)

type Template struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Slug       string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	Name       string    `gorm:"type:varchar(255);not null"`
	PreviewURL string    `gorm:"type:text"`
	IsPremium  bool      `gorm:"default:false"`
	SortOrder  int       `gorm:"default:0"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (Template) TableName() string {
	return "templates"
}
