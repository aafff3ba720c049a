package common

import "errors"

var (
	ErrNoRowsAffected      = errors.New("no rows affected")
	ErrValidation          = errors.New("validation failed")
	ErrDataNotFound        = errors.New("data not found")
	ErrDataExist           = errors.New("data exist")
	ErrInternalServerError = errors.New("internal server error")
	ErrInvalidFormatDate   = errors.New("invalid format date")
	ErrIDEmpty             = errors.New("ID is empty")

	// Panel error taxonomy. ErrAuthRejected is permanent: retrying a bad
	// password cannot succeed. ErrRateLimited is always retried with backoff.
	ErrAuthRejected      = errors.New("panel rejected credentials")
	ErrRateLimited       = errors.New("panel rate limited the request")
	ErrAuthFailed        = errors.New("panel authentication failed")
	ErrSessionExpired    = errors.New("panel session expired")
	ErrFetchFailed       = errors.New("panel transaction fetch failed")
	ErrMalformedResponse = errors.New("panel returned malformed response")

	ErrCabinetNotFound      = errors.New("cabinet not found")
	ErrSyncOrderNotFound    = errors.New("sync order not found")
	ErrSyncOrderDuplicate   = errors.New("an identical sync order was requested moments ago")
	ErrSyncOrderNotPending  = errors.New("sync order is not pending")
	ErrSyncOrderTerminal    = errors.New("sync order already reached terminal status")
	ErrCabinetNameEmpty     = errors.New("cabinet name is empty")
	ErrPagesMustBePositive  = errors.New("pages must be greater than zero")
	ErrLimitMustBePositive  = errors.New("the limit must be greater than zero")
	ErrStartDateAfterEnd    = errors.New("start date is after end date")
	ErrBothDatesRequired    = errors.New("start date and end date are required if one is filled")
	ErrUnableToCreate       = errors.New("unable to create data")
	ErrUnableToUpdate       = errors.New("unable to update data")
)
