package cabinet

import (
	"os"
	"testing"

	"github.com/pmatchdesk/go-cabinet-sync/internal/common/log"
	mockSvc "github.com/pmatchdesk/go-cabinet-sync/internal/services/mock"

	"github.com/labstack/echo/v4"
	"go.uber.org/mock/gomock"
)

type testCabinetHelper struct {
	router             *echo.Echo
	mockCtrl           *gomock.Controller
	mockCabinetService *mockSvc.MockCabinetService
}

func cabinetTestHelper(t *testing.T) testCabinetHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)

	mockCabinetService := mockSvc.NewMockCabinetService(mockCtrl)

	app := echo.New()
	v1Group := app.Group("/api/v1")

	New(v1Group, mockCabinetService)

	return testCabinetHelper{
		router:             app,
		mockCtrl:           mockCtrl,
		mockCabinetService: mockCabinetService,
	}
}

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}
