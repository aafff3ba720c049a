package retry_test

import (
	"context"
	"testing"
	"time"

	"github.com/pmatchdesk/go-cabinet-sync/internal/common"
	"github.com/pmatchdesk/go-cabinet-sync/internal/common/log"
	"github.com/pmatchdesk/go-cabinet-sync/internal/common/retry"
	"github.com/pmatchdesk/go-cabinet-sync/internal/config"

	"github.com/stretchr/testify/assert"
)

func init() {
	log.InitForTest()
}

func newRetryerSUT(ebCfg *config.ExponentialBackOffConfig) retry.Retryer {
	if ebCfg.InitialInterval == 0 {
		ebCfg.InitialInterval = time.Millisecond
	}
	return retry.NewExponentialBackOff(ebCfg)
}

func Test_Retry_ExponentialBackoff(t *testing.T) {
	t.Run("failed - exhausted callback called and returns err", func(t *testing.T) {
		var exhaustedCalled int
		retryerSUT := newRetryerSUT(&config.ExponentialBackOffConfig{MaxRetries: 1})

		err := retryerSUT.Retry(
			context.Background(),
			func() error {
				return assert.AnError
			},
			func() error {
				exhaustedCalled = exhaustedCalled + 1
				return assert.AnError
			},
		)
		assert.NotNil(t, err)
		assert.Equal(t, exhaustedCalled, 1)
	})

	t.Run("failed - exhausted callback swallows the error", func(t *testing.T) {
		var exhaustedCalled int
		retryerSUT := newRetryerSUT(&config.ExponentialBackOffConfig{MaxRetries: 1})

		err := retryerSUT.Retry(
			context.Background(),
			func() error {
				return assert.AnError
			},
			func() error {
				exhaustedCalled = exhaustedCalled + 1
				return nil
			},
		)
		assert.Nil(t, err)
		assert.Equal(t, exhaustedCalled, 1)
	})

	t.Run("success - exhausted callback not called", func(t *testing.T) {
		var exhaustedCalled int
		retryerSUT := newRetryerSUT(&config.ExponentialBackOffConfig{})

		err := retryerSUT.Retry(
			context.Background(),
			func() error {
				return nil
			},
			func() error {
				exhaustedCalled = exhaustedCalled + 1
				return nil
			},
		)
		assert.Nil(t, err)
		assert.Equal(t, exhaustedCalled, 0)
	})

	t.Run("transient failures are retried until success", func(t *testing.T) {
		var attempts int
		retryerSUT := newRetryerSUT(&config.ExponentialBackOffConfig{MaxRetries: 5})

		err := retryerSUT.Retry(
			context.Background(),
			func() error {
				attempts++
				if attempts <= 2 {
					return common.ErrRateLimited
				}
				return nil
			},
			func() error {
				return assert.AnError
			},
		)
		assert.Nil(t, err)
		assert.Equal(t, 3, attempts)
	})

	t.Run("force stop retrying propagates immediately", func(t *testing.T) {
		var attempts int
		retryerSUT := newRetryerSUT(&config.ExponentialBackOffConfig{MaxRetries: 5})

		err := retryerSUT.Retry(
			context.Background(),
			func() error {
				attempts++
				return retryerSUT.StopRetryWithErr(common.ErrAuthRejected)
			},
			func() error {
				return common.ErrAuthRejected
			},
		)
		assert.ErrorIs(t, err, common.ErrAuthRejected)
		assert.Equal(t, 1, attempts)
	})
}
