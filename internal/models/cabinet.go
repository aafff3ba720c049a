package models

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/pmatchdesk/go-cabinet-sync/internal/common"
)

const kindCabinet = "cabinet"

// Cabinet identifies one external account able to authenticate to the panel.
type Cabinet struct {
	ID        int64
	Name      string
	Login     string
	Password  string
	CreatedAt *time.Time
	UpdatedAt *time.Time
}

func (c Cabinet) GetCursor() string {
	offsetBytes := []byte(c.CreatedAt.Format(time.RFC3339Nano))
	return base64.StdEncoding.EncodeToString(offsetBytes)
}

func (c Cabinet) ToModelResponse() CabinetResponse {
	return CabinetResponse{
		Kind:      kindCabinet,
		ID:        fmt.Sprint(c.ID),
		Name:      c.Name,
		Login:     c.Login,
		CreatedAt: c.CreatedAt.UTC().Format(common.DateFormatYYYYMMDDWithTime),
		UpdatedAt: c.UpdatedAt.UTC().Format(common.DateFormatYYYYMMDDWithTime),
	}
}

type CreateCabinetRequest struct {
	Name     string `json:"name" validate:"required,noStartEndSpaces" example:"Cabinet One"`
	Login    string `json:"login" validate:"required,noStartEndSpaces" example:"ann"`
	Password string `json:"password" validate:"required" example:"pw"`
}

type UpdateCabinetRequest struct {
	Name     string `json:"name" validate:"omitempty,noStartEndSpaces" example:"Cabinet One"`
	Login    string `json:"login" validate:"omitempty,noStartEndSpaces" example:"ann"`
	Password string `json:"password" example:"pw"`
}

// CabinetResponse never carries the password back out.
type CabinetResponse struct {
	Kind      string `json:"kind" example:"cabinet"`
	ID        string `json:"id" example:"7"`
	Name      string `json:"name" example:"Cabinet One"`
	Login     string `json:"login" example:"ann"`
	CreatedAt string `json:"createdAt" example:"2006-01-02 15:04:05"`
	UpdatedAt string `json:"updatedAt" example:"2006-01-02 15:04:05"`
}

type CabinetFilterOptions struct {
	Name string

	// Pagination filter
	Limit           int
	AscendingOrder  bool
	AfterCreatedAt  *time.Time
	BeforeCreatedAt *time.Time
}

type DoGetListCabinetsRequest struct {
	Name       string `query:"name" example:"Cabinet One"`
	Limit      int    `query:"limit" example:"10"`
	NextCursor string `query:"nextCursor" example:"abc"`
	PrevCursor string `query:"prevCursor" example:"cba"`
}

func (req DoGetListCabinetsRequest) ToFilterOpts() (*CabinetFilterOptions, error) {
	opts := &CabinetFilterOptions{
		Name:  req.Name,
		Limit: req.Limit,
	}

	if req.Limit < 0 {
		return nil, GetErrMap(ErrKeyLimitMustBeGreaterThanZero)
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

func decodeCreatedAtCursor(cursor string) (decodedTime time.Time, err error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(cursor)
	if err != nil {
		return decodedTime, fmt.Errorf("failed to parse offset string: %w", err)
	}

	decodedTime, err = time.Parse(time.RFC3339Nano, string(decodedBytes))
	if err != nil {
		return decodedTime, fmt.Errorf("failed to parse offset time: %w", err)
	}

	return decodedTime, nil
}
