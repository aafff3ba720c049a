package repositories

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/pmatchdesk/go-cabinet-sync/internal/models"
)

var (
	queryCabinetCreate = `
		INSERT INTO cabinets(
			"name", "login", "password", "createdAt", "updatedAt"
		)
		VALUES(
			$1, $2, $3, NOW(), NOW()
		)
		RETURNING
			"id", "createdAt", "updatedAt";
	`

	queryCabinetGetByID = `SELECT
		  "id",
		  "name",
		  "login",
		  "password",
		  "createdAt",
		  "updatedAt"
		FROM "cabinets"
		WHERE id = $1;`

	queryCabinetGetAll = `SELECT
		  "id",
		  "name",
		  "login",
		  "password",
		  "createdAt",
		  "updatedAt"
		FROM "cabinets"
		ORDER BY "id" ASC;`

	queryCabinetUpdate = `UPDATE cabinets
		SET
		  "name" = $2,
		  "login" = $3,
		  "password" = $4,
		  "updatedAt" = NOW()
		WHERE
		  id = $1`

	queryCabinetDeleteByID = "DELETE FROM cabinets WHERE id = $1"
)

func buildFilteredCabinetQuery(cols []string, opts models.CabinetFilterOptions) sq.SelectBuilder {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query := psql.Select(cols...).From("cabinets")

	if opts.Name != "" {
		query = query.Where(sq.ILike{`"name"`: "%" + opts.Name + "%"})
	}

	return query
}

func buildListCabinetQuery(opts models.CabinetFilterOptions) (sql string, args []interface{}, err error) {
	columns := []string{
		`"id"`,
		`"name"`,
		`"login"`,
		`"password"`,
		`"createdAt"`,
		`"updatedAt"`,
	}

	query := buildFilteredCabinetQuery(columns, opts)

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

func buildCountCabinetQuery(opts models.CabinetFilterOptions) (sql string, args []interface{}, err error) {
	columns := []string{
		`count(1)`,
	}

	query := buildFilteredCabinetQuery(columns, opts)

	return query.ToSql()
}
