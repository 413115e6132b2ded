package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("config: Webserver.URL can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("config: Webserver.Port can not be 0")

	// ErrUnknownDBEngine is returned for a DB.GormEngine other than mysql, postgres or sqlite.
	ErrUnknownDBEngine = errors.New("unknown DB.GormEngine")

	// ErrUnknownMediaBackend is returned for a Media.Backend other than local or s3.
	ErrUnknownMediaBackend = errors.New("unknown Media.Backend")

	// ErrEmptyBucket means Media.Backend is s3 without Media.S3.Bucket.
	ErrEmptyBucket = errors.New("config: Media.S3.Bucket can not be empty")

	// ErrMailIncomplete means Mail.Enabled without Mail.Host or Mail.To.
	ErrMailIncomplete = errors.New("config: Mail needs Host and To when enabled")
)
