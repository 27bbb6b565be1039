package usecase

import (
	"context"

	"tcm-quiz-backend/internal/converter"
	"tcm-quiz-backend/internal/delivery/dto"
	"tcm-quiz-backend/internal/domain/entity"
	"tcm-quiz-backend/internal/domain/repository"
	"tcm-quiz-backend/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PractitionerUsecase interface {
	ListPractitioners(ctx context.Context) (*dto.PractitionerListResponse, error)
	Reseed(ctx context.Context, practitioners []entity.Practitioner) error
}

type practitionerUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	practitionerRepo repository.PractitionerRepository
	auditService     service.AuditService
}

func NewPractitionerUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	practitionerRepo repository.PractitionerRepository,
	auditService service.AuditService,
) PractitionerUsecase {
	return &practitionerUsecase{
		db:               db,
		log:              log,
		practitionerRepo: practitionerRepo,
		auditService:     auditService,
	}
}

func (u *practitionerUsecase) ListPractitioners(ctx context.Context) (*dto.PractitionerListResponse, error) {
	practitioners, err := u.practitionerRepo.FindAllByRating(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find practitioners: %+v", err)
		return nil, err
	}

	responses := converter.PractitionersToResponses(practitioners)

	return &dto.PractitionerListResponse{
		Practitioners: responses,
		Total:         len(responses),
	}, nil
}

// Reseed replaces the whole directory with the given set. Delete and insert
// run in one transaction so a concurrent reader never observes an empty
// directory mid-reseed.
func (u *practitionerUsecase) Reseed(ctx context.Context, practitioners []entity.Practitioner) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.practitionerRepo.DeleteAll(tx); err != nil {
		u.log.Warnf("Failed to clear practitioners: %+v", err)
		return err
	}

	for i := range practitioners {
		if err := u.practitionerRepo.Create(tx, &practitioners[i]); err != nil {
			u.log.Warnf("Failed to create practitioner: %+v", err)
			return err
		}
	}

	if err := u.auditService.LogCreate(ctx, tx, nil, entity.AuditActionPractitionerReseed, "practitioner", "", map[string]interface{}{
		"count": len(practitioners),
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
