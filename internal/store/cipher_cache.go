package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-vault-client/internal/logger"
	"github.com/MKhiriev/go-vault-client/models"
)

// cipherCacheRepository is the SQLite-backed local cache of encrypted vault
// items. It stores ciphertext only; every payload column is opaque to it.
type cipherCacheRepository struct {
	db      *sql.DB
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// NewCipherCacheRepository wraps an open SQLite handle in a [VaultDataStore].
// The handle is expected to have migrations already applied.
func NewCipherCacheRepository(db *sql.DB, log *logger.Logger) VaultDataStore {
	return &cipherCacheRepository{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		logger:  log,
	}
}

// SaveCiphers implements [VaultDataStore]. Existing rows with the same id
// are replaced, which is what a sync refresh wants.
func (r *cipherCacheRepository) SaveCiphers(ctx context.Context, ciphers ...models.Cipher) error {
	if len(ciphers) == 0 {
		return nil
	}

	insert := r.builder.
		Insert("ciphers").
		Options("OR REPLACE").
		Columns("id", "user_id", "type", "name", "data", "revision_date")

	for _, c := range ciphers {
		insert = insert.Values(c.ID, c.UserID, c.Type, string(c.Name), string(c.Data), c.RevisionDate)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return nil
}

// ListCiphers implements [VaultDataStore].
func (r *cipherCacheRepository) ListCiphers(ctx context.Context, userID string) ([]models.Cipher, error) {
	query, args, err := r.builder.
		Select("id", "user_id", "type", "name", "data", "revision_date").
		From("ciphers").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var ciphers []models.Cipher
	for rows.Next() {
		var c models.Cipher
		var name, data string
		if err = rows.Scan(&c.ID, &c.UserID, &c.Type, &name, &data, &c.RevisionDate); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
		}
		c.Name = models.CipherName(name)
		c.Data = models.CipherData(data)
		ciphers = append(ciphers, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
	}

	return ciphers, nil
}

// DeleteDataForUser implements [VaultDataStore]. Deleting a user with no
// cached rows is a successful no-op.
func (r *cipherCacheRepository) DeleteDataForUser(ctx context.Context, userID string) error {
	query, args, err := r.builder.
		Delete("ciphers").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	if deleted, err := result.RowsAffected(); err == nil {
		r.logger.Debug().Str("user_id", userID).Int64("rows", deleted).Msg("cipher cache cleared for user")
	}

	return nil
}
