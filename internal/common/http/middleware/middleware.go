package middleware

import (
	"github.com/pmatchdesk/go-cabinet-sync/internal/config"
	"github.com/pmatchdesk/go-cabinet-sync/internal/repositories"
)

type AppMiddleware struct {
	conf      config.Config
	cacheRepo repositories.CacheRepository
}

func NewMiddleware(
	conf config.Config,
	cacheRepo repositories.CacheRepository) AppMiddleware {
	return AppMiddleware{
		conf:      conf,
		cacheRepo: cacheRepo,
	}
}
