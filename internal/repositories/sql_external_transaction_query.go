package repositories

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/pmatchdesk/go-cabinet-sync/internal/models"
)

var (
	queryExternalTransactionCreateIfAbsent = `
		INSERT INTO external_transactions(
			"externalId", "cabinetId", "wallet", "amount", "total", "status",
			"externalCreatedAt", "externalApprovedAt", "externalExpiredAt",
			"payload", "createdAt", "updatedAt"
		)
		VALUES(
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW()
		)
		ON CONFLICT ("externalId", "cabinetId") DO NOTHING
		RETURNING
			"id";
	`

	queryExternalTransactionGetByExternalID = `SELECT
		  "id",
		  "externalId",
		  "cabinetId",
		  "wallet",
		  "amount",
		  "total",
		  "status",
		  COALESCE("externalCreatedAt", '') as "externalCreatedAt",
		  COALESCE("externalApprovedAt", '') as "externalApprovedAt",
		  COALESCE("externalExpiredAt", '') as "externalExpiredAt",
		  "payload",
		  "createdAt",
		  "updatedAt"
		FROM "external_transactions"
		WHERE "externalId" = $1 AND "cabinetId" = $2;`
)

func buildFilteredExternalTransactionQuery(cols []string, opts models.ExternalTransactionFilterOptions) sq.SelectBuilder {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query := psql.Select(cols...).From("external_transactions")

	if opts.CabinetID != nil {
		query = query.Where(sq.Eq{`"cabinetId"`: *opts.CabinetID})
	}

	if opts.ExternalID != "" {
		query = query.Where(sq.Eq{`"externalId"`: opts.ExternalID})
	}

	if opts.Wallet != "" {
		query = query.Where(sq.Eq{`"wallet"`: opts.Wallet})
	}

	if opts.Status != nil {
		query = query.Where(sq.Eq{`"status"`: *opts.Status})
	}

	if opts.StartCreatedAt != nil {
		query = query.Where(sq.GtOrEq{`DATE("createdAt")`: opts.StartCreatedAt})
	}

	if opts.EndCreatedAt != nil {
		query = query.Where(sq.LtOrEq{`DATE("createdAt")`: opts.EndCreatedAt})
	}

	return query
}

func buildListExternalTransactionQuery(opts models.ExternalTransactionFilterOptions) (sql string, args []interface{}, err error) {
	columns := []string{
		`"id"`,
		`"externalId"`,
		`"cabinetId"`,
		`"wallet"`,
		`"amount"`,
		`"total"`,
		`"status"`,
		`COALESCE("externalCreatedAt", '') as "externalCreatedAt"`,
		`COALESCE("externalApprovedAt", '') as "externalApprovedAt"`,
		`COALESCE("externalExpiredAt", '') as "externalExpiredAt"`,
		`"payload"`,
		`"createdAt"`,
		`"updatedAt"`,
	}

	query := buildFilteredExternalTransactionQuery(columns, opts)

	if opts.AfterCreatedAt != nil {
		query = query.Where(sq.Lt{`"createdAt"`: opts.AfterCreatedAt})
	}

	if opts.BeforeCreatedAt != nil {
		query = query.Where(sq.Gt{`"createdAt"`: opts.BeforeCreatedAt})
	}

	if opts.AscendingOrder {
		query = query.OrderBy(`"createdAt" ASC`)
	} else {
		query = query.OrderBy(`"createdAt" DESC`)
	}

	query = query.Limit(uint64(opts.Limit))

	return query.ToSql()
}

func buildCountExternalTransactionQuery(opts models.ExternalTransactionFilterOptions) (sql string, args []interface{}, err error) {
	columns := []string{
		`count(1)`,
	}

	query := buildFilteredExternalTransactionQuery(columns, opts)

	return query.ToSql()
}
