package models

import (
	"database/sql/driver"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/pmatchdesk/go-cabinet-sync/internal/common"
)

const (
	kindSyncOrder = "syncOrder"

	// SyncOrderTaskName is the name of the task that will be used in the queue
	SyncOrderTaskName = "SYNC_ORDER"

	// AllCabinets is the request sentinel meaning "sync every cabinet".
	AllCabinets = "all"

	SyncOrderStatusPending    = "PENDING"
	SyncOrderStatusInProgress = "IN_PROGRESS"
	SyncOrderStatusCompleted  = "COMPLETED"
	SyncOrderStatusFailed     = "FAILED"
)

// CabinetSyncResult is one cabinet's entry in a sync order's processed
// map: either counts, or an error message with zero counts.
type CabinetSyncResult struct {
	TotalProcessed  int    `json:"totalProcessed"`
	NewTransactions int    `json:"newTransactions"`
	Error           string `json:"error,omitempty"`
}

// ProcessedMap maps cabinet id to its sync result. Keys are stringified
// ids because the map is stored as jsonb.
type ProcessedMap map[string]CabinetSyncResult

// Scan implements the sql.Scanner interface
func (p *ProcessedMap) Scan(src interface{}) error {
	var raw []byte
	switch src := src.(type) {
	case string:
		raw = []byte(src)
	case []byte:
		raw = src
	case nil:
		*p = nil
		return nil
	default:
		return fmt.Errorf("type %T not supported by Scan", src)
	}

	return json.Unmarshal(raw, p)
}

// Value implements the driver.Valuer interface
func (p ProcessedMap) Value() (value driver.Value, err error) {
	if p == nil {
		return []byte("{}"), nil
	}

	return json.Marshal(p)
}

// SyncOrder is one request to synchronize either a single cabinet or
// all cabinets. Lifecycle: PENDING -> IN_PROGRESS -> COMPLETED | FAILED.
// Once terminal the record is immutable.
type SyncOrder struct {
	ID           int64
	CabinetID    *int64 // nil means all cabinets
	Pages        int
	Status       string
	ErrorMessage string
	Processed    ProcessedMap
	CreatedAt    *time.Time
	StartSyncAt  *time.Time
	EndSyncAt    *time.Time
}

func (so SyncOrder) IsAllCabinets() bool {
	return so.CabinetID == nil
}

func (so SyncOrder) IsTerminal() bool {
	return so.Status == SyncOrderStatusCompleted || so.Status == SyncOrderStatusFailed
}

func (so SyncOrder) GetCursor() string {
	offsetBytes := []byte(so.CreatedAt.Format(time.RFC3339Nano))
	return base64.StdEncoding.EncodeToString(offsetBytes)
}

func (so SyncOrder) ToModelResponse() SyncOrderResponse {
	resp := SyncOrderResponse{
		Kind:         kindSyncOrder,
		ID:           fmt.Sprint(so.ID),
		CabinetID:    AllCabinets,
		Pages:        so.Pages,
		Status:       so.Status,
		ErrorMessage: so.ErrorMessage,
		Processed:    so.Processed,
		CreatedAt:    so.CreatedAt.UTC().Format(common.DateFormatYYYYMMDDWithTime),
	}

	if so.CabinetID != nil {
		resp.CabinetID = fmt.Sprint(*so.CabinetID)
	}

	if so.StartSyncAt != nil {
		resp.StartSyncAt = so.StartSyncAt.UTC().Format(common.DateFormatYYYYMMDDWithTime)
	}

	if so.EndSyncAt != nil {
		resp.EndSyncAt = so.EndSyncAt.UTC().Format(common.DateFormatYYYYMMDDWithTime)
	}

	return resp
}

type CreateSyncOrderRequest struct {
	CabinetID string `json:"cabinetId" validate:"required" example:"all"`
	Pages     int    `json:"pages" validate:"required,gt=0" example:"10"`
}

func (req CreateSyncOrderRequest) ToModel() (*SyncOrder, error) {
	order := &SyncOrder{
		Pages:  req.Pages,
		Status: SyncOrderStatusPending,
	}

	if req.CabinetID != AllCabinets {
		cabinetID, err := strconv.ParseInt(req.CabinetID, 10, 64)
		if err != nil {
			return nil, GetErrMap(ErrKeyInvalidCabinetID, req.CabinetID)
		}
		order.CabinetID = &cabinetID
	}

	return order, nil
}

type CreateSyncOrderResponse struct {
	Kind    string `json:"kind" example:"syncOrder"`
	ID      string `json:"id" example:"1"`
	Status  string `json:"status" example:"PENDING"`
	Message string `json:"message" example:"Processing"`
}

func NewCreateSyncOrderResponse(id int64) *CreateSyncOrderResponse {
	return &CreateSyncOrderResponse{
		Kind:    kindSyncOrder,
		ID:      fmt.Sprint(id),
		Status:  SyncOrderStatusPending,
		Message: "Processing",
	}
}

// SyncOrderPublisher is the task message pushed to the queue when a new
// sync order is created.
type SyncOrderPublisher struct {
	ID   string `json:"id"`
	Task string `json:"task"`
}

type SyncOrderResponse struct {
	Kind         string       `json:"kind" example:"syncOrder"`
	ID           string       `json:"id" example:"1"`
	CabinetID    string       `json:"cabinetId" example:"all"`
	Pages        int          `json:"pages" example:"10"`
	Status       string       `json:"status" example:"COMPLETED"`
	ErrorMessage string       `json:"errorMessage,omitempty"`
	Processed    ProcessedMap `json:"processed"`
	CreatedAt    string       `json:"createdAt" example:"2006-01-02 15:04:05"`
	StartSyncAt  string       `json:"startSyncAt,omitempty" example:"2006-01-02 15:04:05"`
	EndSyncAt    string       `json:"endSyncAt,omitempty" example:"2006-01-02 15:04:05"`
}

type SyncOrderFilterOptions struct {
	Status    string
	CabinetID *int64

	StartCreatedAt *time.Time
	EndCreatedAt   *time.Time

	// Pagination filter
	Limit           int
	AscendingOrder  bool
	AfterCreatedAt  *time.Time
	BeforeCreatedAt *time.Time
}

type DoGetListSyncOrdersRequest struct {
	Status     string `query:"status" example:"COMPLETED"`
	CabinetID  string `query:"cabinetId" example:"7"`
	StartDate  string `query:"startDate" example:"2023-01-01"`
	EndDate    string `query:"endDate" example:"2023-01-07"`
	Limit      int    `query:"limit" example:"10"`
	NextCursor string `query:"nextCursor" example:"abc"`
	PrevCursor string `query:"prevCursor" example:"cba"`
}

func (req DoGetListSyncOrdersRequest) ToFilterOpts() (*SyncOrderFilterOptions, error) {
	opts := &SyncOrderFilterOptions{
		Limit: req.Limit,
	}

	if req.Limit < 0 {
		return nil, GetErrMap(ErrKeyLimitMustBeGreaterThanZero)
	}

	if req.Status != "" {
		switch req.Status {
		case SyncOrderStatusPending, SyncOrderStatusInProgress, SyncOrderStatusCompleted, SyncOrderStatusFailed:
			opts.Status = req.Status
		default:
			return nil, GetErrMap(ErrKeyInvalidSyncStatus, req.Status)
		}
	}

	if req.CabinetID != "" && req.CabinetID != AllCabinets {
		cabinetID, err := strconv.ParseInt(req.CabinetID, 10, 64)
		if err != nil {
			return nil, GetErrMap(ErrKeyInvalidCabinetID, req.CabinetID)
		}
		opts.CabinetID = &cabinetID
	}

	if req.StartDate == "" || req.EndDate == "" {
		if req.StartDate != "" || req.EndDate != "" {
			return nil, GetErrMap(ErrKeyStartDateAndEndDateRequiredIfOneIsFilled)
		}
	} else {
		startDate, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, req.StartDate)
		if err != nil {
			return nil, GetErrMap(ErrKeyInvalidFormatDate, fmt.Sprintf("date %s format must be YYYY-MM-DD", req.StartDate))
		}
		opts.StartCreatedAt = &startDate

		endDate, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, req.EndDate)
		if err != nil {
			return nil, GetErrMap(ErrKeyInvalidFormatDate, fmt.Sprintf("date %s format must be YYYY-MM-DD", req.EndDate))
		}
		opts.EndCreatedAt = &endDate

		if startDate.After(endDate) {
			return nil, GetErrMap(ErrKeyStartDateIsAfterEndDate)
		}
	}

	if req.Limit == 0 {
		// default limit
		opts.Limit = 10
	}

	// use over-fetch limit for check next page exists or not
	opts.Limit += 1

	// forward pagination
	if req.NextCursor != "" {
		afterTime, err := decodeCreatedAtCursor(req.NextCursor)
		if err != nil {
			return nil, err
		}
		opts.AfterCreatedAt = &afterTime
	}

	// backward pagination
	if req.NextCursor == "" && req.PrevCursor != "" {
		prevTime, err := decodeCreatedAtCursor(req.PrevCursor)
		if err != nil {
			return nil, err
		}
		opts.BeforeCreatedAt = &prevTime

		// reverse order
		opts.AscendingOrder = true
	}

	return opts, nil
}
