package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CoverLetter struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID      `gorm:"type:uuid;not null;index"`
	ResumeId    *uuid.UUID     `gorm:"type:uuid;index"`
	JobTitle    string         `gorm:"type:varchar(255);not null"`
	CompanyName string         `gorm:"type:varchar(255)"`
	Content     string         `gorm:"type:text"`
	Generated   bool           `gorm:"default:false"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   *time.Time     `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (CoverLetter) TableName() string {
	return "cover_letters"
}
