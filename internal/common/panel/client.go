package panel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/pmatchdesk/go-cabinet-sync/internal/common"
	"github.com/pmatchdesk/go-cabinet-sync/internal/common/httpclient"
	"github.com/pmatchdesk/go-cabinet-sync/internal/common/log"
	"github.com/pmatchdesk/go-cabinet-sync/internal/common/metrics"
	"github.com/pmatchdesk/go-cabinet-sync/internal/common/retry"
	"github.com/pmatchdesk/go-cabinet-sync/internal/config"
	"github.com/pmatchdesk/go-cabinet-sync/internal/monitoring"

	"github.com/go-resty/resty/v2"
)

var logMessage = "[PANEL-CLIENT]"

const serviceName = "external_panel"

//go:generate mockgen -source=./client.go -destination=./mock/client.go -package=panel_mock

// Client turns a (login, password) pair into an authenticated session
// and a session + page number into a list of raw transaction records.
type Client interface {
	Authenticate(ctx context.Context, login, password string) (Session, error)
	FetchTransactionPage(ctx context.Context, session Session, page int) ([]RawTransaction, error)
}

// SessionCache keeps issued sessions between sync runs so a cabinet is
// not re-authenticated on every order. Satisfied by the redis cache
// repository.
type SessionCache interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
}

type client struct {
	cfg     config.PanelConfig
	wrapper *httpclient.RequestWrapper
	retryer retry.Retryer

	sessionCache SessionCache
}

func New(
	cfg config.PanelConfig,
	mtc metrics.Metrics,
	retryer retry.Retryer,
	sessionCache SessionCache,
) Client {
	restyClient := resty.New().
		SetTransport(monitoring.NewMiddlewareRoundTripper(nil)).
		SetTimeout(cfg.Timeout)

	return &client{
		cfg:          cfg,
		wrapper:      httpclient.NewRequestWrapper(restyClient, mtc, serviceName, logMessage),
		retryer:      retryer,
		sessionCache: sessionCache,
	}
}

func (c *client) Authenticate(ctx context.Context, login, password string) (session Session, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if c.sessionCache != nil {
		token, cacheErr := c.sessionCache.Get(ctx, c.sessionKey(login))
		if cacheErr == nil && token != "" {
			return Session{Token: token, Login: login}, nil
		}
		if cacheErr != nil && !errors.Is(cacheErr, common.ErrDataNotFound) {
			log.Warn(ctx, logMessage, log.String("login", login), log.Err(cacheErr))
		}
	}

	url := c.cfg.BaseURL + c.cfg.AuthPath

	var lastErr error
	var attempts int
	operation := func() error {
		attempts++
		httpRes, reqErr := c.wrapper.DoRequest(ctx, http.MethodPost, url, func(req *resty.Request) *resty.Request {
			return req.
				SetHeader("Content-Type", "application/json").
				SetBody(authRequest{Login: login, Password: password})
		})
		if reqErr != nil {
			lastErr = reqErr
			return lastErr
		}

		switch {
		case httpRes.StatusCode() == http.StatusConflict:
			lastErr = fmt.Errorf("%w: login %s", common.ErrAuthRejected, login)
			return c.retryer.StopRetryWithErr(lastErr)
		case httpRes.StatusCode() == http.StatusTooManyRequests:
			lastErr = common.ErrRateLimited
			return lastErr
		case httpRes.StatusCode() < 200 || httpRes.StatusCode() >= 300:
			lastErr = fmt.Errorf("unexpected auth status %d", httpRes.StatusCode())
			return lastErr
		}

		var res authResponse
		if unmarshalErr := json.Unmarshal(httpRes.Body(), &res); unmarshalErr != nil || res.Cookie == "" {
			lastErr = fmt.Errorf("missing cookie in auth response: %v", unmarshalErr)
			return lastErr
		}

		session = Session{Token: res.Cookie, Login: login}
		return nil
	}

	err = c.retryer.Retry(ctx, operation, func() error {
		if errors.Is(lastErr, common.ErrAuthRejected) {
			return lastErr
		}
		return fmt.Errorf("%w after %d attempts: %v", common.ErrAuthFailed, attempts, lastErr)
	})
	if err != nil {
		if errors.Is(err, common.ErrAuthRejected) && c.sessionCache != nil {
			if delErr := c.sessionCache.Del(ctx, c.sessionKey(login)); delErr != nil {
				log.Warn(ctx, logMessage, log.String("login", login), log.Err(delErr))
			}
		}
		return Session{}, err
	}

	if c.sessionCache != nil {
		if cacheErr := c.sessionCache.Set(ctx, c.sessionKey(login), session.Token, c.cfg.SessionTTL); cacheErr != nil {
			log.Warn(ctx, logMessage, log.String("login", login), log.Err(cacheErr))
		}
	}

	return session, nil
}

func (c *client) FetchTransactionPage(ctx context.Context, session Session, page int) (transactions []RawTransaction, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	url := c.cfg.BaseURL + c.cfg.TransactionsPath

	var body []byte
	var lastErr error
	var attempts int
	operation := func() error {
		attempts++
		httpRes, reqErr := c.wrapper.DoRequest(ctx, http.MethodGet, url, func(req *resty.Request) *resty.Request {
			return req.
				SetHeader("Cookie", session.Token).
				SetQueryParam("page", fmt.Sprint(page))
		})
		if reqErr != nil {
			lastErr = reqErr
			return lastErr
		}

		switch {
		case httpRes.StatusCode() == http.StatusUnauthorized,
			httpRes.StatusCode() == http.StatusForbidden:
			// The panel no longer honors this session. Retrying with the
			// same token cannot succeed.
			lastErr = fmt.Errorf("%w: fetch status %d", common.ErrSessionExpired, httpRes.StatusCode())
			return c.retryer.StopRetryWithErr(lastErr)
		case httpRes.StatusCode() == http.StatusTooManyRequests:
			lastErr = common.ErrRateLimited
			return lastErr
		case httpRes.StatusCode() < 200 || httpRes.StatusCode() >= 300:
			lastErr = fmt.Errorf("unexpected fetch status %d", httpRes.StatusCode())
			return lastErr
		}

		body = httpRes.Body()
		return nil
	}

	err = c.retryer.Retry(ctx, operation, func() error {
		if errors.Is(lastErr, common.ErrSessionExpired) {
			return lastErr
		}
		return fmt.Errorf("%w: page %d after %d attempts: %v", common.ErrFetchFailed, page, attempts, lastErr)
	})
	if err != nil {
		if errors.Is(err, common.ErrSessionExpired) && c.sessionCache != nil && session.Login != "" {
			if delErr := c.sessionCache.Del(ctx, c.sessionKey(session.Login)); delErr != nil {
				log.Warn(ctx, logMessage, log.String("login", session.Login), log.Err(delErr))
			}
		}
		return nil, err
	}

	var res transactionsResponse
	if unmarshalErr := json.Unmarshal(body, &res); unmarshalErr != nil {
		// A malformed page is treated as an empty one so the pagination
		// loop still terminates, but it can mask real data loss.
		log.Warn(ctx, logMessage,
			log.Int("page", page),
			log.String("message", "malformed transactions response, treating as empty page"),
			log.Err(fmt.Errorf("%w: %v", common.ErrMalformedResponse, unmarshalErr)))
		return []RawTransaction{}, nil
	}

	transactions = make([]RawTransaction, 0, len(res.Data))
	for _, raw := range res.Data {
		transaction, parseErr := parseRawTransaction(raw)
		if parseErr != nil {
			log.Warn(ctx, logMessage,
				log.Int("page", page),
				log.String("message", "skipping unparseable transaction record"),
				log.Err(parseErr))
			continue
		}
		transactions = append(transactions, transaction)
	}

	return transactions, nil
}

func (c *client) sessionKey(login string) string {
	return fmt.Sprintf("go-cabinet-sync:panel:session:%s", login)
}
