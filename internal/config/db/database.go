package db

import (
	"fmt"

	"github.com/linskybing/request-portal/internal/config"
	"github.com/linskybing/request-portal/internal/domain/audit"
	"github.com/linskybing/request-portal/internal/domain/form"
	"github.com/linskybing/request-portal/internal/domain/org"
	"github.com/linskybing/request-portal/internal/domain/submission"
	"github.com/linskybing/request-portal/internal/domain/user"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		zap.L().Fatal("failed to connect to database", zap.Error(err))
	}
	zap.L().Info("database connected", zap.String("host", config.DbHost), zap.String("db", config.DbName))
}

// Migrate creates or updates every table the portal owns.
func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&org.Department{},
		&org.Course{},
		&user.User{},
		&form.Definition{},
		&form.Field{},
		&submission.Submission{},
		&audit.AuditLog{},
	)
}
