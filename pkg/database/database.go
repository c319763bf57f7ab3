package database

import (
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"english_edu_backend/internal/config"
	"english_edu_backend/internal/model"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dbCfg := cfg.Database
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		dbCfg.User,
		dbCfg.Password,
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.DBName,
		dbCfg.Charset,
		dbCfg.ParseTime,
	)

	logLevel := logger.Warn
	if cfg.Server.Mode != "release" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	// release 模式默认不做自动迁移，除非显式 --migrate
	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		err = db.AutoMigrate(
			&model.Learner{},
			&model.ActivityRecord{},
			&model.VocabularyEntry{},
			&model.AssessmentSnapshot{},
		)
		if err != nil {
			return nil, err
		}
		log.Println("Database migration completed")
	}

	return db, nil
}
