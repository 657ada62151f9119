package config

import (
	"fmt"
	"os"

	"github.com/admitpath/api-go/models"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB connects to Postgres and migrates the schema. DATABASE_URL wins when
// set; otherwise the DSN is assembled from the discrete DB_* variables.
func InitDB() *gorm.DB {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			os.Getenv("DB_HOST"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			os.Getenv("DB_PORT"))
	}

	// TranslateError turns unique violations into gorm.ErrDuplicatedKey.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.School{},
		&models.AdmissionCase{},
		&models.Review{},
		&models.Subscription{},
		&models.Report{},
		&models.AuditLog{},
		&models.SchoolDeadline{},
		&models.GlobalEvent{},
	); err != nil {
		logrus.WithError(err).Fatal("Failed to migrate database")
	}

	return db
}
