package daemon

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/webfolio/webfolio/internal/db/models"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "changeme" //nolint:gosec // first login only
)

// seed creates a staff account while the user table is empty.
func seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	if _, err := Provider(db).CreateUser(defaultAdminUsername, "", defaultAdminPassword, true); err != nil {
		return err
	}

	log.Warn().Str("username", defaultAdminUsername).Msg("created default staff account, change its password")

	return nil
}
