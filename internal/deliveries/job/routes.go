package job

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/pmatchdesk/go-cabinet-sync/internal/common"
	"github.com/pmatchdesk/go-cabinet-sync/internal/common/flag"
	"github.com/pmatchdesk/go-cabinet-sync/internal/common/log"
	"github.com/pmatchdesk/go-cabinet-sync/internal/config"
	v1sync "github.com/pmatchdesk/go-cabinet-sync/internal/deliveries/job/v1/sync"
	"github.com/pmatchdesk/go-cabinet-sync/internal/services"
)

type JobRoutes map[string]map[string]func(ctx context.Context, date time.Time, flag flag.Job) error

type Job struct {
	Routes JobRoutes
}

func New(cfg config.Config, srv *services.Services) *Job {
	v1group := "v1"

	jobRoutes := JobRoutes{
		v1group: v1sync.Routes(srv.Sync),
		// add other version routes
	}

	return &Job{jobRoutes}
}

func (j *Job) Start(ctx context.Context, f flag.Job) {
	if fn, ok := j.Routes[f.Version][f.JobName]; ok {
		var (
			runningDate time.Time
			err         error
		)
		ctx = log.SetCorrelationId(ctx, uuid.New().String())

		defer func() {
			log.LogJob(ctx, f.JobName, f.Version, f.Date, err)
		}()

		if f.Date != "" {
			runningDate, err = common.ParseStringToDatetime(common.DateFormatYYYYMMDD, f.Date)
			if err != nil {
				return
			}
		}
		if err = fn(ctx, runningDate, f); err != nil {
			return
		}
	} else {
		log.LogJob(ctx, f.JobName, f.Version, f.Date, errors.New("invalid version or job name"))
	}
}
