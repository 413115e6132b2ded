// Package migrate holds the versioned schema migrations.
package migrate

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/webfolio/webfolio/internal/db/models"
)

// Models lists every table owned by the website, parents before children.
func Models() []any {
	return []any{
		&models.User{},
		&models.ProjectCategory{},
		&models.Project{},
		&models.Employee{},
		&models.Skill{},
		&models.Message{},
		&models.GeneralInfo{},
		&models.FrequentlyQuestion{},
		&models.Service{},
		&models.Subscriber{},
	}
}

func migrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "202601010001_initial",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(Models()...)
			},
			Rollback: func(tx *gorm.DB) error {
				all := Models()
				for i := len(all) - 1; i >= 0; i-- {
					if err := tx.Migrator().DropTable(all[i]); err != nil {
						return err
					}
				}

				return nil
			},
		},
	}
}

// New returns the migrator for db.
func New(db *gorm.DB) *gormigrate.Gormigrate {
	return gormigrate.New(db, gormigrate.DefaultOptions, migrations())
}

// Up applies all pending migrations.
func Up(db *gorm.DB) error {
	if err := New(db).Migrate(); err != nil {
		return errors.Wrap(err, "migration failed")
	}

	log.Info().Msg("database migrated")

	return nil
}

// Down rolls back the most recent migration.
func Down(db *gorm.DB) error {
	if err := New(db).RollbackLast(); err != nil {
		return errors.Wrap(err, "rollback failed")
	}

	log.Info().Msg("last migration rolled back")

	return nil
}
