package models

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"time"

	"github.com/pmatchdesk/go-cabinet-sync/internal/common"
)

const kindExternalTransaction = "externalTransaction"

// ExternalTransaction is a transaction record as reported by the panel.
// The pair (ExternalID, CabinetID) is unique; re-ingesting the same
// record for the same cabinet is a no-op.
type ExternalTransaction struct {
	ID         int64
	ExternalID string
	CabinetID  int64
	Wallet     string
	Amount     Money
	Total      Money
	Status     int

	// Timestamps as reported by the panel, kept verbatim.
	ExternalCreatedAt  string
	ExternalApprovedAt string
	ExternalExpiredAt  string

	Payload   Payload
	CreatedAt *time.Time
	UpdatedAt *time.Time
}

func (et ExternalTransaction) GetCursor() string {
	offsetBytes := []byte(et.CreatedAt.Format(time.RFC3339Nano))
	return base64.StdEncoding.EncodeToString(offsetBytes)
}

func (et ExternalTransaction) ToModelResponse() ExternalTransactionResponse {
	return ExternalTransactionResponse{
		Kind:               kindExternalTransaction,
		ID:                 fmt.Sprint(et.ID),
		ExternalID:         et.ExternalID,
		CabinetID:          fmt.Sprint(et.CabinetID),
		Wallet:             et.Wallet,
		Amount:             et.Amount,
		Total:              et.Total,
		Status:             et.Status,
		ExternalCreatedAt:  et.ExternalCreatedAt,
		ExternalApprovedAt: et.ExternalApprovedAt,
		ExternalExpiredAt:  et.ExternalExpiredAt,
		Payload:            et.Payload,
		CreatedAt:          et.CreatedAt.UTC().Format(common.DateFormatYYYYMMDDWithTime),
	}
}

type ExternalTransactionResponse struct {
	Kind               string  `json:"kind" example:"externalTransaction"`
	ID                 string  `json:"id" example:"1"`
	ExternalID         string  `json:"externalId" example:"100"`
	CabinetID          string  `json:"cabinetId" example:"7"`
	Wallet             string  `json:"wallet" example:"wallet-a"`
	Amount             Money   `json:"amount"`
	Total              Money   `json:"total"`
	Status             int     `json:"status" example:"2"`
	ExternalCreatedAt  string  `json:"externalCreatedAt" example:"2023-10-25 08:08:26"`
	ExternalApprovedAt string  `json:"externalApprovedAt,omitempty" example:"2023-10-25 08:09:00"`
	ExternalExpiredAt  string  `json:"externalExpiredAt,omitempty" example:"2023-10-25 09:08:26"`
	Payload            Payload `json:"payload,omitempty"`
	CreatedAt          string  `json:"createdAt" example:"2006-01-02 15:04:05"`
}

// PersistResult is the outcome of persisting one batch of raw records
// for a single cabinet. TotalProcessed counts every input record,
// NewTransactions counts inserts only; the difference is the number of
// duplicates skipped.
type PersistResult struct {
	TotalProcessed  int
	NewTransactions int
	Failed          int
}

type ExternalTransactionFilterOptions struct {
	CabinetID  *int64
	ExternalID string
	Wallet     string
	Status     *int

	StartCreatedAt *time.Time
	EndCreatedAt   *time.Time

	// Pagination filter
	Limit           int
	AscendingOrder  bool
	AfterCreatedAt  *time.Time
	BeforeCreatedAt *time.Time
}

type DoGetListExternalTransactionsRequest struct {
	CabinetID  string `query:"cabinetId" example:"7"`
	ExternalID string `query:"externalId" example:"100"`
	Wallet     string `query:"wallet" example:"wallet-a"`
	Status     string `query:"status" example:"2"`
	StartDate  string `query:"startDate" example:"2023-01-01"`
	EndDate    string `query:"endDate" example:"2023-01-07"`
	Limit      int    `query:"limit" example:"10"`
	NextCursor string `query:"nextCursor" example:"abc"`
	PrevCursor string `query:"prevCursor" example:"cba"`
}

func (req DoGetListExternalTransactionsRequest) ToFilterOpts() (*ExternalTransactionFilterOptions, error) {
	opts := &ExternalTransactionFilterOptions{
		ExternalID: req.ExternalID,
		Wallet:     req.Wallet,
		Limit:      req.Limit,
	}

	if req.Limit < 0 {
		return nil, GetErrMap(ErrKeyLimitMustBeGreaterThanZero)
	}

	if req.CabinetID != "" {
		cabinetID, err := strconv.ParseInt(req.CabinetID, 10, 64)
		if err != nil {
			return nil, GetErrMap(ErrKeyInvalidCabinetID, req.CabinetID)
		}
		opts.CabinetID = &cabinetID
	}

	if req.Status != "" {
		status, err := strconv.Atoi(req.Status)
		if err != nil {
			return nil, GetErrMap("INVALID_VALUES", fmt.Sprintf("status %s must be an integer", req.Status))
		}
		opts.Status = &status
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
