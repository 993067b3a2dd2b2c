package repository

import (
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"

	"washdesk/internal/infra"
	"washdesk/internal/pkg/pgconv"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

// wrapPgErr classifies driver errors into repository error kinds.
func wrapPgErr(msg string, err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(msg, err, infra.KindNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
		case pgErrCodeForeignKeyViolation:
			return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
		}
	}

	return infra.WrapRepoErr(msg, err)
}
