package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/therealutkarshpriyadarshi/dashmpd/pkg/models"
)

// ErrManifestNotFound is returned when no catalog row exists for a name
var ErrManifestNotFound = models.ErrManifestNotFound

const manifestColumns = `id, name, revision, object_key, type, profiles, periods,
	representations, size_bytes, checksum, metadata, created_at, updated_at`

// ManifestRepository stores the manifest catalog
type ManifestRepository struct {
	db *DB
}

// NewManifestRepository creates a new manifest repository
func NewManifestRepository(db *DB) *ManifestRepository {
	return &ManifestRepository{db: db}
}

// NextRevision returns the revision number the next publish of name will use
func (r *ManifestRepository) NextRevision(ctx context.Context, name string) (int64, error) {
	var rev int64
	err := r.db.Pool.QueryRow(ctx,
		`SELECT COALESCE(MAX(revision), 0) + 1 FROM manifest_revisions WHERE name = $1`, name,
	).Scan(&rev)
	if err != nil {
		return 0, fmt.Errorf("failed to get next revision: %w", err)
	}
	return rev, nil
}

// SaveManifest records a new revision and makes it the latest entry for its name.
// ID, CreatedAt and UpdatedAt are filled in from the stored row.
func (r *ManifestRepository) SaveManifest(ctx context.Context, m *models.Manifest) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.Metadata == nil {
		m.Metadata = models.Metadata{}
	}

	return pgx.BeginFunc(ctx, r.db.Pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO manifest_revisions (name, revision, object_key, size_bytes, checksum)
			VALUES ($1, $2, $3, $4, $5)
		`, m.Name, m.Revision, m.ObjectKey, m.SizeBytes, m.Checksum)
		if err != nil {
			return fmt.Errorf("failed to record revision: %w", err)
		}

		query := `
			INSERT INTO manifests (id, name, revision, object_key, type, profiles, periods,
				representations, size_bytes, checksum, metadata)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			ON CONFLICT (name) DO UPDATE
			SET revision = EXCLUDED.revision, object_key = EXCLUDED.object_key,
			    type = EXCLUDED.type, profiles = EXCLUDED.profiles, periods = EXCLUDED.periods,
			    representations = EXCLUDED.representations, size_bytes = EXCLUDED.size_bytes,
			    checksum = EXCLUDED.checksum, metadata = EXCLUDED.metadata, updated_at = NOW()
			RETURNING id, created_at, updated_at
		`

		err = tx.QueryRow(ctx, query,
			m.ID, m.Name, m.Revision, m.ObjectKey, m.Type, m.Profiles, m.Periods,
			m.Representations, m.SizeBytes, m.Checksum, m.Metadata,
		).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to save manifest: %w", err)
		}

		return nil
	})
}

// GetManifest retrieves the latest catalog entry for name
func (r *ManifestRepository) GetManifest(ctx context.Context, name string) (*models.Manifest, error) {
	row := r.db.Pool.QueryRow(ctx, `SELECT `+manifestColumns+` FROM manifests WHERE name = $1`, name)

	m, err := scanManifest(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", name, ErrManifestNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get manifest: %w", err)
	}

	return m, nil
}

// ListManifests retrieves catalog entries, most recently updated first
func (r *ManifestRepository) ListManifests(ctx context.Context, limit, offset int) ([]*models.Manifest, error) {
	query := `SELECT ` + manifestColumns + ` FROM manifests
		ORDER BY updated_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list manifests: %w", err)
	}
	defer rows.Close()

	var manifests []*models.Manifest
	for rows.Next() {
		m, err := scanManifest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan manifest: %w", err)
		}
		manifests = append(manifests, m)
	}

	return manifests, rows.Err()
}

// CountManifests returns the number of catalog entries
func (r *ManifestRepository) CountManifests(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM manifests`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count manifests: %w", err)
	}
	return n, nil
}

// ListRevisions returns the revision history of name, newest first
func (r *ManifestRepository) ListRevisions(ctx context.Context, name string) ([]*models.ManifestRevision, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT name, revision, object_key, size_bytes, checksum, created_at
		FROM manifest_revisions
		WHERE name = $1
		ORDER BY revision DESC
	`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to list revisions: %w", err)
	}
	defer rows.Close()

	var revisions []*models.ManifestRevision
	for rows.Next() {
		var rev models.ManifestRevision
		if err := rows.Scan(&rev.Name, &rev.Revision, &rev.ObjectKey, &rev.SizeBytes, &rev.Checksum, &rev.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan revision: %w", err)
		}
		revisions = append(revisions, &rev)
	}

	return revisions, rows.Err()
}

// DeleteManifest removes a manifest and its revision history
func (r *ManifestRepository) DeleteManifest(ctx context.Context, name string) error {
	return pgx.BeginFunc(ctx, r.db.Pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM manifests WHERE name = $1`, name)
		if err != nil {
			return fmt.Errorf("failed to delete manifest: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%s: %w", name, ErrManifestNotFound)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM manifest_revisions WHERE name = $1`, name); err != nil {
			return fmt.Errorf("failed to delete revisions: %w", err)
		}
		return nil
	})
}

func scanManifest(row pgx.Row) (*models.Manifest, error) {
	var m models.Manifest
	err := row.Scan(
		&m.ID, &m.Name, &m.Revision, &m.ObjectKey, &m.Type, &m.Profiles, &m.Periods,
		&m.Representations, &m.SizeBytes, &m.Checksum, &m.Metadata, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
