package repository

import (
	"tcm-quiz-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type PractitionerRepository interface {
	Create(db *gorm.DB, practitioner *entity.Practitioner) error
	FindByID(db *gorm.DB, id int) (*entity.Practitioner, error)
	FindAllByRating(db *gorm.DB) ([]entity.Practitioner, error)
	DeleteAll(db *gorm.DB) error
}
