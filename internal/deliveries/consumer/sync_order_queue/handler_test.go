package syncorderqueue

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/pmatchdesk/go-cabinet-sync/internal/common/log"
	mockSvc "github.com/pmatchdesk/go-cabinet-sync/internal/services/mock"

	"github.com/Shopify/sarama"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}

type syncOrderQueueHandlerHelper struct {
	mockCtrl *gomock.Controller
	ss       *mockSvc.MockSyncService

	payload []byte
}

func newSyncOrderQueueHandlerHelper(t *testing.T) syncOrderQueueHandlerHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)

	ss := mockSvc.NewMockSyncService(mockCtrl)

	payload := []byte(`{"id":"1","task":"SYNC_ORDER"}`)

	return syncOrderQueueHandlerHelper{
		mockCtrl: mockCtrl,
		ss:       ss,
		payload:  payload,
	}
}

func TestSyncOrderQueueHandler_SetupCleanup(t *testing.T) {
	th := newSyncOrderQueueHandlerHelper(t)
	defer th.mockCtrl.Finish()

	h := &SyncOrderQueueHandler{ss: th.ss}

	assert.NoError(t, h.Setup(nil))
	assert.NoError(t, h.Cleanup(nil))
}

func TestSyncOrderQueueHandler_processMessage(t *testing.T) {
	th := newSyncOrderQueueHandlerHelper(t)
	defer th.mockCtrl.Finish()

	type args struct {
		ctx     context.Context
		message *sarama.ConsumerMessage
	}

	tests := []struct {
		name    string
		args    args
		doMock  func(a args)
		wantErr bool
	}{
		{
			name: "success handle message",
			args: args{
				ctx:     context.Background(),
				message: &sarama.ConsumerMessage{Value: th.payload},
			},
			doMock: func(a args) {
				th.ss.EXPECT().ProcessOrder(a.ctx, int64(1)).Return(nil)
			},
			wantErr: false,
		},
		{
			name: "invalid json payload",
			args: args{
				ctx:     context.Background(),
				message: &sarama.ConsumerMessage{Value: []byte(`{not-json`)},
			},
			wantErr: true,
		},
		{
			name: "unsupported task skipped without error",
			args: args{
				ctx:     context.Background(),
				message: &sarama.ConsumerMessage{Value: []byte(`{"id":"1","task":"OTHER_TASK"}`)},
			},
			wantErr: false,
		},
		{
			name: "non numeric order id",
			args: args{
				ctx:     context.Background(),
				message: &sarama.ConsumerMessage{Value: []byte(`{"id":"first","task":"SYNC_ORDER"}`)},
			},
			wantErr: true,
		},
		{
			name: "sync service failure",
			args: args{
				ctx:     context.Background(),
				message: &sarama.ConsumerMessage{Value: th.payload},
			},
			doMock: func(a args) {
				th.ss.EXPECT().ProcessOrder(a.ctx, int64(1)).Return(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.args)
			}

			h := &SyncOrderQueueHandler{ss: th.ss}

			err := h.processMessage(tt.args.ctx, tt.args.message)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}
