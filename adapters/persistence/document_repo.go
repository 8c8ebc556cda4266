package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/khoahotran/dynamic-profile/internal/application/service"
	"github.com/khoahotran/dynamic-profile/pkg/apperror"
	"github.com/khoahotran/dynamic-profile/pkg/logger"
)

const documentsTable = "profile_documents"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type postgresDocumentRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresDocumentRepo(db *pgxpool.Pool, logger logger.Logger) service.DocumentStorage {
	return &postgresDocumentRepo{db: db, logger: logger}
}

func (r *postgresDocumentRepo) Load(ctx context.Context, key string) ([]byte, error) {
	query, args, err := psql.Select("document").
		From(documentsTable).
		Where(sq.Eq{"storage_key": key}).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build document query", err)
	}

	var raw []byte
	if err := r.db.QueryRow(ctx, query, args...).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrDocumentNotFound
		}
		return nil, apperror.NewInternal("failed to query document", err)
	}
	return raw, nil
}

func (r *postgresDocumentRepo) Save(ctx context.Context, key string, data []byte) error {
	query, args, err := psql.Insert(documentsTable).
		Columns("storage_key", "document", "updated_at").
		Values(key, data, sq.Expr("NOW()")).
		Suffix("ON CONFLICT (storage_key) DO UPDATE SET document = EXCLUDED.document, updated_at = NOW()").
		ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build document upsert", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return apperror.NewInternal("failed to upsert document", err)
	}
	r.logger.Debug("Document upserted", zap.String("storage_key", key), zap.Int64("rows", cmdTag.RowsAffected()))
	return nil
}
