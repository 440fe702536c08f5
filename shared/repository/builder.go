package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"slotkeeper/infras/otel"
	"slotkeeper/shared/constant"
	"slotkeeper/shared/logger"
)

// Psql builds statements with Postgres $n placeholders.
var Psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select runs a built query into dest. q is either a pool or a transaction.
func Select(ctx context.Context, scope otel.Scope, q sqlx.QueryerContext, dest any, builder squirrel.Sqlizer) error {
	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = sqlx.SelectContext(ctx, q, dest, query, args...); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to run query: %w", err)
	}

	return nil
}

func Exec(ctx context.Context, scope otel.Scope, e sqlx.ExecerContext, builder squirrel.Sqlizer) (sql.Result, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build statement: %w", err)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := e.ExecContext(ctx, query, args...)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to run statement: %w", err)
	}

	return result, nil
}
