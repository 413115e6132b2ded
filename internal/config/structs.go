package config

import (
	"time"

	"github.com/webfolio/webfolio/internal/logger"
)

// Supported media backends.
const (
	MediaLocal = "local"
	MediaS3    = "s3"
)

// Session settings.
type Session struct {
	ExpiryTime time.Duration
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
	Media     Media
	Mail      Mail
}

// Webserver implement webserver settings.
type Webserver struct {
	BrowseStatic   bool    // enable static file browsing (for development purposes only)
	DisableRecover bool    // disable recover middleware
	Port           int     // listening port for the webserver
	ShutDownTime   int     // wait time for shutdown
	URL            string  // base url for the webserver
	Session        Session // session settings
}

// Media holds the storage settings for uploaded photos.
type Media struct {
	Backend   string // local or s3
	Path      string // root directory for the local backend
	URLPrefix string // public prefix prepended to stored paths
	S3        S3
}

// S3 holds the object storage settings used when Media.Backend is s3.
type S3 struct {
	Bucket          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string //nolint:gosec // config field
	PathStyle       bool
}

// Mail holds the SMTP settings for contact message notifications.
type Mail struct {
	Enabled  bool
	Host     string
	Port     int
	User     string
	Password string //nolint:gosec // config field
	From     string
	To       []string
}
