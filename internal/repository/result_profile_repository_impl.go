package repository

import (
	"errors"

	"tcm-quiz-backend/internal/domain/entity"
	domainRepo "tcm-quiz-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type resultProfileRepository struct{}

func NewResultProfileRepository() domainRepo.ResultProfileRepository {
	return &resultProfileRepository{}
}

func (r *resultProfileRepository) Create(db *gorm.DB, profile *entity.ResultProfile) error {
	return db.Create(profile).Error
}

func (r *resultProfileRepository) FindByBodyType(db *gorm.DB, bodyType string) (*entity.ResultProfile, error) {
	var profile entity.ResultProfile
	err := db.Where("body_type = ?", bodyType).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *resultProfileRepository) DeleteAll(db *gorm.DB) error {
	return db.Where("1 = 1").Delete(&entity.ResultProfile{}).Error
}
