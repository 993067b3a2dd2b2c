package readstore

import (
	"github.com/Masterminds/squirrel"

	"washdesk/internal/infra"
	"washdesk/internal/pkg/pgconv"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func wrapReadErr(msg string, err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(msg, err, infra.KindNotFound)
	}
	return infra.WrapRepoErr(msg, err)
}

