package repositories

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/pmatchdesk/go-cabinet-sync/internal/models"
)

var (
	querySyncOrderCreate = `
		INSERT INTO sync_orders(
			"cabinetId", "pages", "status", "processed", "createdAt"
		)
		VALUES(
			$1, $2, 'PENDING', '{}'::jsonb, NOW()
		)
		RETURNING
			"id", "status", "createdAt";
	`

	querySyncOrderGetByID = `SELECT
		  "id",
		  "cabinetId",
		  "pages",
		  "status",
		  COALESCE("errorMessage", '') as "errorMessage",
		  "processed",
		  "createdAt",
		  "startSyncAt",
		  "endSyncAt"
		FROM "sync_orders"
		WHERE id = $1;`

	querySyncOrderGetPending = `SELECT
		  "id",
		  "cabinetId",
		  "pages",
		  "status",
		  COALESCE("errorMessage", '') as "errorMessage",
		  "processed",
		  "createdAt",
		  "startSyncAt",
		  "endSyncAt"
		FROM "sync_orders"
		WHERE "status" = $1
		ORDER BY "createdAt" ASC;`

	querySyncOrderMarkInProgress = `UPDATE sync_orders
		SET
		  "status" = $2,
		  "startSyncAt" = NOW()
		WHERE
		  id = $1 AND "status" = $3`

	querySyncOrderUpsertProcessedEntry = `UPDATE sync_orders
		SET
		  "processed" = "processed" || $2::jsonb
		WHERE
		  id = $1`

	querySyncOrderComplete = `UPDATE sync_orders
		SET
		  "status" = $2,
		  "endSyncAt" = NOW()
		WHERE
		  id = $1 AND "status" = $3`

	querySyncOrderFail = `UPDATE sync_orders
		SET
		  "status" = $2,
		  "errorMessage" = $3,
		  "endSyncAt" = NOW()
		WHERE
		  id = $1 AND "status" = $4`

	querySyncOrderFailStale = `UPDATE sync_orders
		SET
		  "status" = $1,
		  "errorMessage" = 'sync abandoned: no worker owns this order',
		  "endSyncAt" = NOW()
		WHERE
		  "status" = $2 AND "startSyncAt" < $3`
)

func buildFilteredSyncOrderQuery(cols []string, opts models.SyncOrderFilterOptions) sq.SelectBuilder {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query := psql.Select(cols...).From("sync_orders")

	if opts.Status != "" {
		query = query.Where(sq.Eq{`"status"`: opts.Status})
	}

	if opts.CabinetID != nil {
		query = query.Where(sq.Eq{`"cabinetId"`: *opts.CabinetID})
	}

	if opts.StartCreatedAt != nil {
		query = query.Where(sq.GtOrEq{`DATE("createdAt")`: opts.StartCreatedAt})
	}

	if opts.EndCreatedAt != nil {
		query = query.Where(sq.LtOrEq{`DATE("createdAt")`: opts.EndCreatedAt})
	}

	return query
}

func buildListSyncOrderQuery(opts models.SyncOrderFilterOptions) (sql string, args []interface{}, err error) {
	columns := []string{
		`"id"`,
		`"cabinetId"`,
		`"pages"`,
		`"status"`,
		`COALESCE("errorMessage", '') as "errorMessage"`,
		`"processed"`,
		`"createdAt"`,
		`"startSyncAt"`,
		`"endSyncAt"`,
	}

	query := buildFilteredSyncOrderQuery(columns, opts)

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

func buildCountSyncOrderQuery(opts models.SyncOrderFilterOptions) (sql string, args []interface{}, err error) {
	columns := []string{
		`count(1)`,
	}

	query := buildFilteredSyncOrderQuery(columns, opts)

	return query.ToSql()
}
