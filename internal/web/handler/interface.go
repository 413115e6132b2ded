package handler

import (
	"github.com/webfolio/webfolio/internal/config"
)

// Service holds what every handler shares. Handlers embed it and set Cfg in Init.
type Service struct {
	Cfg *config.Config
}

// SecureCookies reports whether cookies get the Secure flag. Dev mode serves plain http.
func (s *Service) SecureCookies() bool {
	return s.Cfg != nil && !s.Cfg.DevMode
}
