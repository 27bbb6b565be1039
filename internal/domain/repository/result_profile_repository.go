package repository

import (
	"tcm-quiz-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type ResultProfileRepository interface {
	Create(db *gorm.DB, profile *entity.ResultProfile) error
	FindByBodyType(db *gorm.DB, bodyType string) (*entity.ResultProfile, error)
	DeleteAll(db *gorm.DB) error
}
