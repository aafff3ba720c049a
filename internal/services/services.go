package services

import (
	"github.com/pmatchdesk/go-cabinet-sync/internal/common/metrics"
	"github.com/pmatchdesk/go-cabinet-sync/internal/common/panel"
	"github.com/pmatchdesk/go-cabinet-sync/internal/common/publisher"
	"github.com/pmatchdesk/go-cabinet-sync/internal/config"
	"github.com/pmatchdesk/go-cabinet-sync/internal/repositories"
)

type service struct {
	srv *Services
}

type Services struct {
	conf config.Config

	sqlRepo   repositories.SQLRepository
	cacheRepo repositories.CacheRepository

	panelClient  panel.Client
	syncOrderPub publisher.Publisher

	metrics metrics.Metrics

	common service

	Cabinet     *cabinet
	Transaction *transaction
	Sync        *syncService
}

func New(
	conf config.Config,
	sqlRepo repositories.SQLRepository,
	cacheRepo repositories.CacheRepository,
	panelClient panel.Client,
	syncOrderPub publisher.Publisher,
	metrics metrics.Metrics,
) *Services {
	srv := &Services{
		conf:         conf,
		sqlRepo:      sqlRepo,
		cacheRepo:    cacheRepo,
		panelClient:  panelClient,
		syncOrderPub: syncOrderPub,
		metrics:      metrics,
	}
	srv.common.srv = srv
	srv.Cabinet = (*cabinet)(&srv.common)
	srv.Transaction = (*transaction)(&srv.common)
	srv.Sync = (*syncService)(&srv.common)

	return srv
}
