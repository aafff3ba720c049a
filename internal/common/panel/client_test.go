package panel_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pmatchdesk/go-cabinet-sync/internal/common"
	"github.com/pmatchdesk/go-cabinet-sync/internal/common/log"
	"github.com/pmatchdesk/go-cabinet-sync/internal/common/panel"
	panel_mock "github.com/pmatchdesk/go-cabinet-sync/internal/common/panel/mock"
	"github.com/pmatchdesk/go-cabinet-sync/internal/common/retry"
	"github.com/pmatchdesk/go-cabinet-sync/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}

func newTestRetryer() retry.Retryer {
	return retry.NewExponentialBackOff(&config.ExponentialBackOffConfig{
		MaxRetries:        2,
		MaxBackoffTime:    time.Second,
		BackoffMultiplier: 1.1,
		InitialInterval:   time.Millisecond,
	})
}

func newTestClient(t *testing.T, serverURL string, sessionCache panel.SessionCache) panel.Client {
	t.Helper()

	return panel.New(config.PanelConfig{
		BaseURL:          serverURL,
		AuthPath:         "/auth",
		TransactionsPath: "/transactions",
		Timeout:          time.Second,
		SessionTTL:       time.Minute,
	}, nil, newTestRetryer(), sessionCache)
}

func TestClient_Authenticate(t *testing.T) {
	t.Run("success returns session built from cookie field", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/auth", r.URL.Path)
			w.Write([]byte(`{"cookie":"sid=abc123"}`))
		}))
		defer server.Close()

		session, err := newTestClient(t, server.URL, nil).Authenticate(context.Background(), "ann", "pw")
		require.NoError(t, err)
		assert.Equal(t, "sid=abc123", session.Token)
	})

	t.Run("conflict is rejected without retry", func(t *testing.T) {
		var attempts int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&attempts, 1)
			w.WriteHeader(http.StatusConflict)
		}))
		defer server.Close()

		_, err := newTestClient(t, server.URL, nil).Authenticate(context.Background(), "ann", "bad-pw")
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrAuthRejected)
		assert.EqualValues(t, 1, atomic.LoadInt32(&attempts))
	})

	t.Run("rate limit is retried until success", func(t *testing.T) {
		var attempts int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&attempts, 1) <= 2 {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			w.Write([]byte(`{"cookie":"sid=late"}`))
		}))
		defer server.Close()

		session, err := newTestClient(t, server.URL, nil).Authenticate(context.Background(), "ann", "pw")
		require.NoError(t, err)
		assert.Equal(t, "sid=late", session.Token)
		assert.EqualValues(t, 3, atomic.LoadInt32(&attempts))
	})

	t.Run("persistent server error exhausts into auth failed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		_, err := newTestClient(t, server.URL, nil).Authenticate(context.Background(), "ann", "pw")
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrAuthFailed)
		assert.Contains(t, err.Error(), "after 3 attempts")
	})

	t.Run("cached session skips the panel", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		sessionCache := panel_mock.NewMockSessionCache(mockCtrl)
		sessionCache.EXPECT().
			Get(gomock.Any(), "go-cabinet-sync:panel:session:ann").
			Return("sid=cached", nil)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("panel must not be called on cache hit")
		}))
		defer server.Close()

		session, err := newTestClient(t, server.URL, sessionCache).Authenticate(context.Background(), "ann", "pw")
		require.NoError(t, err)
		assert.Equal(t, "sid=cached", session.Token)
	})

	t.Run("rejected credentials bust the cached session", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		sessionCache := panel_mock.NewMockSessionCache(mockCtrl)
		sessionCache.EXPECT().
			Get(gomock.Any(), "go-cabinet-sync:panel:session:ann").
			Return("", common.ErrDataNotFound)
		sessionCache.EXPECT().
			Del(gomock.Any(), "go-cabinet-sync:panel:session:ann").
			Return(nil)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
		}))
		defer server.Close()

		_, err := newTestClient(t, server.URL, sessionCache).Authenticate(context.Background(), "ann", "bad-pw")
		assert.ErrorIs(t, err, common.ErrAuthRejected)
	})
}

func TestClient_FetchTransactionPage(t *testing.T) {
	session := panel.Session{Token: "sid=abc123"}

	t.Run("parses records and keeps raw payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/transactions", r.URL.Path)
			assert.Equal(t, "2", r.URL.Query().Get("page"))
			assert.Equal(t, "sid=abc123", r.Header.Get("Cookie"))
			w.Write([]byte(`{"data":[
				{"id":100,"wallet":"w1","amount":{"USD":10.5},"total":{"USD":11},"status":2,"created_at":"2023-10-25 08:08:26","extra":"kept"},
				{"id":"101","wallet":"w2","amount":{"RUB":950},"status":1,"created_at":"2023-10-25 08:09:00"}
			]}`))
		}))
		defer server.Close()

		transactions, err := newTestClient(t, server.URL, nil).FetchTransactionPage(context.Background(), session, 2)
		require.NoError(t, err)
		require.Len(t, transactions, 2)

		assert.Equal(t, "100", transactions[0].ID)
		assert.Equal(t, "w1", transactions[0].Wallet)
		assert.Equal(t, 2, transactions[0].Status)
		assert.Contains(t, string(transactions[0].Raw), `"extra":"kept"`)

		assert.Equal(t, "101", transactions[1].ID)
		assert.Equal(t, "2023-10-25 08:09:00", transactions[1].CreatedAt)
	})

	t.Run("empty page returns empty slice", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":[]}`))
		}))
		defer server.Close()

		transactions, err := newTestClient(t, server.URL, nil).FetchTransactionPage(context.Background(), session, 1)
		require.NoError(t, err)
		assert.Empty(t, transactions)
	})

	t.Run("malformed response is treated as empty page", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html>maintenance</html>`))
		}))
		defer server.Close()

		transactions, err := newTestClient(t, server.URL, nil).FetchTransactionPage(context.Background(), session, 1)
		require.NoError(t, err)
		assert.Empty(t, transactions)
	})

	t.Run("persistent server error exhausts into fetch failed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		_, err := newTestClient(t, server.URL, nil).FetchTransactionPage(context.Background(), session, 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrFetchFailed)
		assert.Contains(t, err.Error(), "after 3 attempts")
	})

	t.Run("expired session busts the cache without retrying", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		sessionCache := panel_mock.NewMockSessionCache(mockCtrl)
		sessionCache.EXPECT().
			Get(gomock.Any(), "go-cabinet-sync:panel:session:ann").
			Return("sid=stale", nil)
		sessionCache.EXPECT().
			Del(gomock.Any(), "go-cabinet-sync:panel:session:ann").
			Return(nil)

		var fetches int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/transactions" {
				atomic.AddInt32(&fetches, 1)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			t.Fatalf("unexpected request to %s", r.URL.Path)
		}))
		defer server.Close()

		client := newTestClient(t, server.URL, sessionCache)

		cachedSession, err := client.Authenticate(context.Background(), "ann", "pw")
		require.NoError(t, err)
		assert.Equal(t, "sid=stale", cachedSession.Token)

		_, err = client.FetchTransactionPage(context.Background(), cachedSession, 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrSessionExpired)
		assert.EqualValues(t, 1, atomic.LoadInt32(&fetches))
	})
}
