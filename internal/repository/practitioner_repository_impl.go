package repository

import (
	"errors"

	"tcm-quiz-backend/internal/domain/entity"
	domainRepo "tcm-quiz-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type practitionerRepository struct{}

func NewPractitionerRepository() domainRepo.PractitionerRepository {
	return &practitionerRepository{}
}

func (r *practitionerRepository) Create(db *gorm.DB, practitioner *entity.Practitioner) error {
	return db.Create(practitioner).Error
}

func (r *practitionerRepository) FindByID(db *gorm.DB, id int) (*entity.Practitioner, error) {
	var practitioner entity.Practitioner
	err := db.Where("id = ?", id).First(&practitioner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &practitioner, nil
}

func (r *practitionerRepository) FindAllByRating(db *gorm.DB) ([]entity.Practitioner, error) {
	var practitioners []entity.Practitioner
	// Ties keep insertion order via the serial id.
	err := db.Order("rating DESC, id ASC").Find(&practitioners).Error
	if err != nil {
		return nil, err
	}
	return practitioners, nil
}

func (r *practitionerRepository) DeleteAll(db *gorm.DB) error {
	return db.Where("1 = 1").Delete(&entity.Practitioner{}).Error
}
