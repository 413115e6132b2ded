// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/webfolio/webfolio/internal/config"
)

const sqliteForeignKeys = "_pragma=foreign_keys(1)"

// MySQL builds the go-sql-driver/mysql DSN.
func MySQL(cfg *config.Config) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Host,
		cfg.DB.Port,
		cfg.DB.Name,
		cfg.DB.Extras,
	)
}

// PostgresURI builds a postgres:// connection URI, understood by gorm and the session storage.
func PostgresURI(cfg *config.Config) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.DB.User, cfg.DB.Password),
		Host:     fmt.Sprintf("%s:%d", cfg.DB.Host, cfg.DB.Port),
		Path:     "/" + cfg.DB.Name,
		RawQuery: cfg.DB.Extras,
	}

	return u.String()
}

// SQLite builds the glebarez/sqlite DSN with foreign keys enforced.
func SQLite(cfg *config.Config) string {
	p := cfg.DB.Path
	if p == "" {
		p = ":memory:"
	}

	sep := "?"
	if strings.Contains(p, "?") {
		sep = "&"
	}

	return p + sep + sqliteForeignKeys
}
