package panel

import (
	"encoding/json"

	"github.com/pmatchdesk/go-cabinet-sync/internal/models"
)

// Session is the opaque authentication token issued by the panel. Only
// this package knows it is cookie-based. Login is carried so the cached
// copy can be dropped when the panel stops honoring the token.
type Session struct {
	Token string
	Login string
}

func (s Session) IsZero() bool {
	return s.Token == ""
}

type authRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type authResponse struct {
	Cookie string `json:"cookie"`
}

type transactionsResponse struct {
	Data []json.RawMessage `json:"data"`
}

// RawTransaction is one record as reported by the panel. Raw keeps the
// original object verbatim so unknown fields survive ingestion.
type RawTransaction struct {
	ID         string
	Wallet     string
	Amount     models.Money
	Total      models.Money
	Status     int
	CreatedAt  string
	ApprovedAt string
	ExpiredAt  string

	Raw json.RawMessage
}

type rawTransactionWire struct {
	ID         json.Number  `json:"id"`
	Wallet     string       `json:"wallet"`
	Amount     models.Money `json:"amount"`
	Total      models.Money `json:"total"`
	Status     int          `json:"status"`
	CreatedAt  string       `json:"created_at"`
	ApprovedAt string       `json:"approved_at"`
	ExpiredAt  string       `json:"expired_at"`
}

func parseRawTransaction(raw json.RawMessage) (RawTransaction, error) {
	var wire rawTransactionWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		return RawTransaction{}, err
	}

	return RawTransaction{
		ID:         wire.ID.String(),
		Wallet:     wire.Wallet,
		Amount:     wire.Amount,
		Total:      wire.Total,
		Status:     wire.Status,
		CreatedAt:  wire.CreatedAt,
		ApprovedAt: wire.ApprovedAt,
		ExpiredAt:  wire.ExpiredAt,
		Raw:        raw,
	}, nil
}
