package models

import (
	"errors"
	"fmt"

	"github.com/pmatchdesk/go-cabinet-sync/internal/common"
)

type (
	MapErrs     map[string]ErrorDetail
	ErrorDetail struct {
		Code         string `json:"code,omitempty"`
		ErrorMessage error  `json:"message,omitempty"`
	}
)

func (e ErrorDetail) Error() string {
	return fmt.Sprintf("code: %s, message: %v", e.Code, e.ErrorMessage)
}

const (
	ErrKeyLimitMustBeGreaterThanZero               = "LIMIT_MUST_BE_GREATER_THAN_ZERO"
	ErrKeyInvalidFormatDate                        = "INVALID_FORMAT_DATE"
	ErrKeyStartDateIsAfterEndDate                  = "START_DATE_IS_AFTER_END_DATE"
	ErrKeyStartDateAndEndDateRequiredIfOneIsFilled = "START_DATE_AND_END_DATE_REQUIRED"
	ErrKeyInvalidSyncStatus                        = "INVALID_SYNC_STATUS"
	ErrKeyInvalidCabinetID                         = "INVALID_CABINET_ID"
	ErrKeyPagesMustBeGreaterThanZero               = "PAGES_MUST_BE_GREATER_THAN_ZERO"
)

// MapErrors maps both the ErrKey constants above and
// "<field>_<validator-tag>" keys produced by request validation.
var MapErrors = MapErrs{
	ErrKeyLimitMustBeGreaterThanZero:               {Code: ErrKeyLimitMustBeGreaterThanZero, ErrorMessage: common.ErrLimitMustBePositive},
	ErrKeyInvalidFormatDate:                        {Code: ErrKeyInvalidFormatDate, ErrorMessage: common.ErrInvalidFormatDate},
	ErrKeyStartDateIsAfterEndDate:                  {Code: ErrKeyStartDateIsAfterEndDate, ErrorMessage: common.ErrStartDateAfterEnd},
	ErrKeyStartDateAndEndDateRequiredIfOneIsFilled: {Code: ErrKeyStartDateAndEndDateRequiredIfOneIsFilled, ErrorMessage: common.ErrBothDatesRequired},
	ErrKeyInvalidSyncStatus:                        {Code: ErrKeyInvalidSyncStatus, ErrorMessage: errors.New("invalid sync order status")},
	ErrKeyInvalidCabinetID:                         {Code: ErrKeyInvalidCabinetID, ErrorMessage: errors.New("invalid cabinet id")},
	ErrKeyPagesMustBeGreaterThanZero:               {Code: ErrKeyPagesMustBeGreaterThanZero, ErrorMessage: common.ErrPagesMustBePositive},

	"name_required":          {Code: "MISSING_FIELD", ErrorMessage: errors.New("field is missing")},
	"login_required":         {Code: "MISSING_FIELD", ErrorMessage: errors.New("field is missing")},
	"password_required":      {Code: "MISSING_FIELD", ErrorMessage: errors.New("field is missing")},
	"pages_required":         {Code: "MISSING_FIELD", ErrorMessage: errors.New("field is missing")},
	"pages_gt":               {Code: "INVALID_VALUES", ErrorMessage: common.ErrPagesMustBePositive},
	"name_noStartEndSpaces":  {Code: "INVALID_VALUES", ErrorMessage: errors.New("value must not start or end with spaces")},
	"login_noStartEndSpaces": {Code: "INVALID_VALUES", ErrorMessage: errors.New("value must not start or end with spaces")},
}

func GetErrMap(code string, args ...string) ErrorDetail {
	v, ok := MapErrors[code]
	if !ok {
		return ErrorDetail{
			Code:         code,
			ErrorMessage: errors.New("unknown error mapping"),
		}
	}
	if len(args) > 0 {
		v.ErrorMessage = fmt.Errorf("%s caused by %s", v.ErrorMessage, args[0])
	}

	return v
}
