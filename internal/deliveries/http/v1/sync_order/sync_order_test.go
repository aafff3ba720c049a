package syncorder

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pmatchdesk/go-cabinet-sync/internal/common"
	"github.com/pmatchdesk/go-cabinet-sync/internal/models"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_Handler_createSyncOrder(t *testing.T) {
	testHelper := syncOrderTestHelper(t)

	type args struct {
		body string
	}
	type Expectation struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name        string
		args        args
		expectation Expectation
		doMock      func(args args)
	}{
		{
			name: "accepted",
			args: args{
				body: `{"cabinetId":"all","pages":10}`,
			},
			expectation: Expectation{
				wantRes:  `{"kind":"syncOrder","id":"42","status":"PENDING","message":"Processing"}`,
				wantCode: 202,
			},
			doMock: func(args args) {
				testHelper.mockSyncService.EXPECT().
					CreateOrder(gomock.AssignableToTypeOf(context.Background()), models.CreateSyncOrderRequest{
						CabinetID: "all",
						Pages:     10,
					}).
					Return(models.NewCreateSyncOrderResponse(42), nil)
			},
		},
		{
			name: "missing pages",
			args: args{
				body: `{"cabinetId":"all"}`,
			},
			expectation: Expectation{
				wantRes:  `{"status":"error","message":"validation failed","errors":[{"code":"MISSING_FIELD","field":"pages","message":"field is missing"}]}`,
				wantCode: 422,
			},
		},
		{
			name: "non numeric cabinet id",
			args: args{
				body: `{"cabinetId":"first","pages":10}`,
			},
			expectation: Expectation{
				wantRes:  `{"status":"error","code":"INVALID_CABINET_ID","message":"invalid cabinet id caused by first"}`,
				wantCode: 400,
			},
			doMock: func(args args) {
				testHelper.mockSyncService.EXPECT().
					CreateOrder(gomock.AssignableToTypeOf(context.Background()), gomock.Any()).
					Return(nil, models.GetErrMap(models.ErrKeyInvalidCabinetID, "first"))
			},
		},
		{
			name: "unknown cabinet",
			args: args{
				body: `{"cabinetId":"99","pages":10}`,
			},
			expectation: Expectation{
				wantRes:  `{"status":"error","code":404,"message":"cabinet not found"}`,
				wantCode: 404,
			},
			doMock: func(args args) {
				testHelper.mockSyncService.EXPECT().
					CreateOrder(gomock.AssignableToTypeOf(context.Background()), gomock.Any()).
					Return(nil, common.ErrCabinetNotFound)
			},
		},
		{
			name: "repeated request within the dedup window",
			args: args{
				body: `{"cabinetId":"all","pages":10}`,
			},
			expectation: Expectation{
				wantRes:  `{"status":"error","code":409,"message":"an identical sync order was requested moments ago"}`,
				wantCode: 409,
			},
			doMock: func(args args) {
				testHelper.mockSyncService.EXPECT().
					CreateOrder(gomock.AssignableToTypeOf(context.Background()), gomock.Any()).
					Return(nil, common.ErrSyncOrderDuplicate)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.args)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/sync-orders", strings.NewReader(tt.args.body))
			req.Header.Set("Content-Type", "application/json")

			rec := httptest.NewRecorder()
			testHelper.router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tt.expectation.wantCode, resp.StatusCode)
			require.Equal(t, tt.expectation.wantRes, strings.TrimSuffix(string(body), "\n"))
		})
	}
}

func Test_Handler_getSyncOrder(t *testing.T) {
	testHelper := syncOrderTestHelper(t)
	timeNow := time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)

	t.Run("completed order with processed map", func(t *testing.T) {
		cabinetID := int64(7)
		testHelper.mockSyncService.EXPECT().
			GetOrder(gomock.AssignableToTypeOf(context.Background()), int64(42)).
			Return(&models.SyncOrder{
				ID:        42,
				CabinetID: &cabinetID,
				Pages:     2,
				Status:    models.SyncOrderStatusCompleted,
				Processed: models.ProcessedMap{
					"7": {TotalProcessed: 2, NewTransactions: 2},
				},
				CreatedAt:   &timeNow,
				StartSyncAt: &timeNow,
				EndSyncAt:   &timeNow,
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/sync-orders/42", nil)
		rec := httptest.NewRecorder()
		testHelper.router.ServeHTTP(rec, req)

		require.Equal(t, 200, rec.Code)
		require.JSONEq(t, `{
			"kind": "syncOrder",
			"id": "42",
			"cabinetId": "7",
			"pages": 2,
			"status": "COMPLETED",
			"processed": {"7": {"totalProcessed": 2, "newTransactions": 2}},
			"createdAt": "2023-01-10 00:00:00",
			"startSyncAt": "2023-01-10 00:00:00",
			"endSyncAt": "2023-01-10 00:00:00"
		}`, rec.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		testHelper.mockSyncService.EXPECT().
			GetOrder(gomock.AssignableToTypeOf(context.Background()), int64(99)).
			Return(nil, common.ErrSyncOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/sync-orders/99", nil)
		rec := httptest.NewRecorder()
		testHelper.router.ServeHTTP(rec, req)

		require.Equal(t, 404, rec.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/sync-orders/latest", nil)
		rec := httptest.NewRecorder()
		testHelper.router.ServeHTTP(rec, req)

		require.Equal(t, 400, rec.Code)
	})
}

func Test_Handler_getListSyncOrders(t *testing.T) {
	testHelper := syncOrderTestHelper(t)
	timeNow := time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		testHelper.mockSyncService.EXPECT().
			GetListOrders(gomock.AssignableToTypeOf(context.Background()), gomock.Any()).
			DoAndReturn(func(_ context.Context, opts models.SyncOrderFilterOptions) ([]models.SyncOrder, int, error) {
				require.Equal(t, models.SyncOrderStatusCompleted, opts.Status)
				require.Equal(t, 11, opts.Limit) // over-fetch

				return []models.SyncOrder{{
					ID:        1,
					Pages:     10,
					Status:    models.SyncOrderStatusCompleted,
					CreatedAt: &timeNow,
				}}, 1, nil
			})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/sync-orders?status=COMPLETED", nil)
		rec := httptest.NewRecorder()
		testHelper.router.ServeHTTP(rec, req)

		require.Equal(t, 200, rec.Code)
		require.JSONEq(t, `{
			"kind": "collection",
			"contents": [{
				"kind": "syncOrder",
				"id": "1",
				"cabinetId": "all",
				"pages": 10,
				"status": "COMPLETED",
				"processed": null,
				"createdAt": "2023-01-10 00:00:00"
			}],
			"pagination": {"prev": "", "next": "", "totalEntries": 1}
		}`, rec.Body.String())
	})

	t.Run("invalid status filter", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/sync-orders?status=DONE", nil)
		rec := httptest.NewRecorder()
		testHelper.router.ServeHTTP(rec, req)

		require.Equal(t, 400, rec.Code)
	})
}
