package repository

import (
	"tcm-quiz-backend/internal/domain/entity"
	domainRepo "tcm-quiz-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type questionRepository struct{}

func NewQuestionRepository() domainRepo.QuestionRepository {
	return &questionRepository{}
}

func (r *questionRepository) Create(db *gorm.DB, question *entity.Question) error {
	return db.Create(question).Error
}

func (r *questionRepository) FindAllOrdered(db *gorm.DB) ([]entity.Question, error) {
	var questions []entity.Question
	err := db.Preload("Options").Order("question_order ASC").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) DeleteAll(db *gorm.DB) error {
	// Options cascade with their questions.
	return db.Where("1 = 1").Delete(&entity.Question{}).Error
}
