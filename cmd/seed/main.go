package main

import (
	"context"
	"fmt"
	"os"

	"tcm-quiz-backend/config"
	"tcm-quiz-backend/internal/domain/entity"
	"tcm-quiz-backend/internal/infrastructure/database"
	"tcm-quiz-backend/internal/repository"
	"tcm-quiz-backend/internal/seed"
	"tcm-quiz-backend/internal/service"
	"tcm-quiz-backend/internal/usecase"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Administrative database tool. Commands:
//
//	migrate  apply pending schema migrations
//	seed     migrate, then load the quiz bank, result profiles and practitioners
//	reset    wipe all data, then migrate and seed
//	list     print row counts per table
func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	logrus.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	switch os.Args[1] {
	case "migrate":
		err = database.Migrate(db)
	case "seed":
		if err = database.Migrate(db); err == nil {
			err = seedContent(db)
		}
	case "reset":
		if err = database.Migrate(db); err == nil {
			if err = wipeData(db); err == nil {
				err = seedContent(db)
			}
		}
	case "list":
		err = listCounts(db)
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		logrus.Fatalf("Command %q failed: %v", os.Args[1], err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: seed [migrate|seed|reset|list]")
}

// seedContent replaces the quiz bank and result profiles in one transaction,
// then reseeds the practitioner directory through its usecase. Submissions
// and appointments are untouched.
func seedContent(db *gorm.DB) error {
	questionRepo := repository.NewQuestionRepository()
	resultProfileRepo := repository.NewResultProfileRepository()

	log := logrus.StandardLogger()
	auditService := service.NewAuditService(log, repository.NewAuditLogRepository())
	practitionerUsecase := usecase.NewPractitionerUsecase(db, log, repository.NewPractitionerRepository(), auditService)

	tx := db.Begin()
	defer tx.Rollback()

	if err := questionRepo.DeleteAll(tx); err != nil {
		return err
	}
	if err := resultProfileRepo.DeleteAll(tx); err != nil {
		return err
	}

	questions := seed.Questions()
	for i := range questions {
		if err := questionRepo.Create(tx, &questions[i]); err != nil {
			return err
		}
	}

	profiles := seed.ResultProfiles()
	for i := range profiles {
		if err := resultProfileRepo.Create(tx, &profiles[i]); err != nil {
			return err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	practitioners := seed.Practitioners()
	if err := practitionerUsecase.Reseed(context.Background(), practitioners); err != nil {
		return err
	}

	logrus.Infof("Seeded %d questions, %d result profiles, %d practitioners",
		len(questions), len(profiles), len(practitioners))

	return nil
}

// wipeData deletes every row from every table. Order respects foreign keys.
func wipeData(db *gorm.DB) error {
	tx := db.Begin()
	defer tx.Rollback()

	for _, model := range []interface{}{
		&entity.Appointment{},
		&entity.Submission{},
		&entity.AuditLog{},
		&entity.User{},
		&entity.Practitioner{},
		&entity.Question{},
		&entity.ResultProfile{},
	} {
		if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	logrus.Info("All data deleted")

	return nil
}

func listCounts(db *gorm.DB) error {
	tables := []struct {
		name  string
		model interface{}
	}{
		{"questions", &entity.Question{}},
		{"options", &entity.Option{}},
		{"result_profiles", &entity.ResultProfile{}},
		{"submissions", &entity.Submission{}},
		{"practitioners", &entity.Practitioner{}},
		{"appointments", &entity.Appointment{}},
		{"users", &entity.User{}},
		{"audit_logs", &entity.AuditLog{}},
	}

	for _, t := range tables {
		var count int64
		if err := db.Model(t.model).Count(&count).Error; err != nil {
			return err
		}
		fmt.Printf("%-20s %d\n", t.name, count)
	}

	return nil
}
