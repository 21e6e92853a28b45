package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var (
	// ErrNotConfigured indicates the storage pool was not initialised.
	ErrNotConfigured = errors.New("storage: pool not configured")
)

const (
	upsertMetricPointSQL = `INSERT INTO metric_points (
        marker_key,
        recorded,
        value,
        unit,
        label,
        ref_min,
        ref_max
    ) VALUES (
        $1,$2,$3,$4,$5,$6,$7
    )
    ON CONFLICT (marker_key, recorded, label) DO UPDATE
    SET
        value   = EXCLUDED.value,
        unit    = EXCLUDED.unit,
        ref_min = EXCLUDED.ref_min,
        ref_max = EXCLUDED.ref_max;`

	listPointsByMarkerSQL = `SELECT
        id,
        marker_key,
        recorded,
        value,
        unit,
        label,
        ref_min,
        ref_max,
        created_at
    FROM metric_points
    WHERE marker_key = $1
    ORDER BY created_at;`

	listMarkerKeysSQL = `SELECT DISTINCT marker_key FROM metric_points ORDER BY marker_key;`

	countPointsSQL = `SELECT COUNT(*) FROM metric_points;`

	deletePointsBeforeSQL = `DELETE FROM metric_points WHERE created_at < $1;`

	upsertLearnedMarkerSQL = `INSERT INTO learned_markers (
        marker_key,
        label,
        unit,
        male_min,
        male_max,
        female_min,
        female_max,
        source_url
    ) VALUES (
        $1,$2,$3,$4,$5,$6,$7,$8
    )
    ON CONFLICT (marker_key) DO UPDATE
    SET label      = EXCLUDED.label,
        unit       = EXCLUDED.unit,
        male_min   = EXCLUDED.male_min,
        male_max   = EXCLUDED.male_max,
        female_min = EXCLUDED.female_min,
        female_max = EXCLUDED.female_max,
        source_url = EXCLUDED.source_url;`

	listLearnedMarkersSQL = `SELECT
        marker_key,
        label,
        unit,
        male_min,
        male_max,
        female_min,
        female_max,
        source_url,
        created_at
    FROM learned_markers
    ORDER BY marker_key;`

	tryAdvisoryLockSQL = `SELECT pg_try_advisory_lock($1);`
	advisoryUnlockSQL  = `SELECT pg_advisory_unlock($1);`
)

// MetricPointStore defines operations for marker history persistence.
type MetricPointStore interface {
	UpsertMetricPoint(ctx context.Context, rec MetricRecord) error
	ListPointsByMarker(ctx context.Context, markerKey string) ([]MetricRecord, error)
	ListMarkerKeys(ctx context.Context) ([]string, error)
	CountPoints(ctx context.Context) (int64, error)
	DeletePointsBefore(ctx context.Context, olderThan time.Time) error
}

// LearnedMarkerStore defines operations for learned descriptor persistence.
type LearnedMarkerStore interface {
	UpsertLearnedMarker(ctx context.Context, rec LearnedMarkerRecord) error
	ListLearnedMarkers(ctx context.Context) ([]LearnedMarkerRecord, error)
}

// AdvisoryLocker exposes advisory lock helpers.
type AdvisoryLocker interface {
	TryAdvisoryLock(ctx context.Context, key int64) (unlock func(), acquired bool, err error)
}

// Store aggregates access to metric points and learned markers.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore wires a pgx pool into a Store.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Close releases the underlying pool resources.
func (s *Store) Close() {
	if s == nil || s.pool == nil {
		return
	}
	s.pool.Close()
}

// TryAdvisoryLock attempts to acquire a postgres advisory lock and returns a release func.
func (s *Store) TryAdvisoryLock(ctx context.Context, key int64) (func(), bool, error) {
	pool, err := s.getPool()
	if err != nil {
		return nil, false, err
	}

	conn, err := pool.Acquire(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("acquire connection: %w", err)
	}

	var acquired bool
	if err := conn.QueryRow(ctx, tryAdvisoryLockSQL, key).Scan(&acquired); err != nil {
		conn.Release()
		return nil, false, fmt.Errorf("try advisory lock: %w", err)
	}
	if !acquired {
		conn.Release()
		return nil, false, nil
	}

	unlock := func() {
		ctxUnlock, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if _, err := conn.Exec(ctxUnlock, advisoryUnlockSQL, key); err != nil {
			// unlock best effort; log omitted in storage package
		}
		conn.Release()
	}
	return unlock, true, nil
}

func (s *Store) getPool() (*pgxpool.Pool, error) {
	if s == nil || s.pool == nil {
		return nil, ErrNotConfigured
	}
	return s.pool, nil
}

// UpsertMetricPoint persists or updates one observation.
func (s *Store) UpsertMetricPoint(ctx context.Context, rec MetricRecord) error {
	pool, err := s.getPool()
	if err != nil {
		return err
	}

	var refMin, refMax interface{}
	if rec.RefMin != nil {
		refMin = rec.RefMin.String()
	}
	if rec.RefMax != nil {
		refMax = rec.RefMax.String()
	}

	_, execErr := pool.Exec(ctx, upsertMetricPointSQL,
		rec.MarkerKey,
		rec.Recorded,
		rec.Value.String(),
		rec.Unit,
		rec.Label,
		refMin,
		refMax,
	)
	if execErr != nil {
		return fmt.Errorf("upsert metric point: %w", execErr)
	}
	return nil
}

// ListPointsByMarker lists the full stored history of one marker.
func (s *Store) ListPointsByMarker(ctx context.Context, markerKey string) ([]MetricRecord, error) {
	pool, err := s.getPool()
	if err != nil {
		return nil, err
	}

	rows, queryErr := pool.Query(ctx, listPointsByMarkerSQL, markerKey)
	if queryErr != nil {
		return nil, fmt.Errorf("list points by marker: %w", queryErr)
	}
	defer rows.Close()

	records := make([]MetricRecord, 0)
	for rows.Next() {
		rec, scanErr := scanMetricRecord(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		records = append(records, rec)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return records, nil
}

// ListMarkerKeys lists every marker that has at least one stored point.
func (s *Store) ListMarkerKeys(ctx context.Context) ([]string, error) {
	pool, err := s.getPool()
	if err != nil {
		return nil, err
	}

	rows, queryErr := pool.Query(ctx, listMarkerKeysSQL)
	if queryErr != nil {
		return nil, fmt.Errorf("list marker keys: %w", queryErr)
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return keys, nil
}

// CountPoints counts stored observations.
func (s *Store) CountPoints(ctx context.Context) (int64, error) {
	pool, err := s.getPool()
	if err != nil {
		return 0, err
	}
	var count int64
	if scanErr := pool.QueryRow(ctx, countPointsSQL).Scan(&count); scanErr != nil {
		return 0, fmt.Errorf("count points: %w", scanErr)
	}
	return count, nil
}

// DeletePointsBefore deletes observations inserted before the cutoff.
func (s *Store) DeletePointsBefore(ctx context.Context, olderThan time.Time) error {
	pool, err := s.getPool()
	if err != nil {
		return err
	}
	if _, execErr := pool.Exec(ctx, deletePointsBeforeSQL, olderThan); execErr != nil {
		return fmt.Errorf("delete points before: %w", execErr)
	}
	return nil
}

// UpsertLearnedMarker persists an externally-resolved descriptor.
func (s *Store) UpsertLearnedMarker(ctx context.Context, rec LearnedMarkerRecord) error {
	pool, err := s.getPool()
	if err != nil {
		return err
	}

	args := []interface{}{
		rec.MarkerKey,
		rec.Label,
		rec.Unit,
		nullDecimal(rec.MaleMin),
		nullDecimal(rec.MaleMax),
		nullDecimal(rec.FemaleMin),
		nullDecimal(rec.FemaleMax),
		rec.SourceURL,
	}
	if _, execErr := pool.Exec(ctx, upsertLearnedMarkerSQL, args...); execErr != nil {
		return fmt.Errorf("upsert learned marker: %w", execErr)
	}
	return nil
}

// ListLearnedMarkers lists every stored learned descriptor.
func (s *Store) ListLearnedMarkers(ctx context.Context) ([]LearnedMarkerRecord, error) {
	pool, err := s.getPool()
	if err != nil {
		return nil, err
	}

	rows, queryErr := pool.Query(ctx, listLearnedMarkersSQL)
	if queryErr != nil {
		return nil, fmt.Errorf("list learned markers: %w", queryErr)
	}
	defer rows.Close()

	records := make([]LearnedMarkerRecord, 0)
	for rows.Next() {
		var (
			rec       LearnedMarkerRecord
			maleMin   sql.NullString
			maleMax   sql.NullString
			femaleMin sql.NullString
			femaleMax sql.NullString
		)
		if err := rows.Scan(
			&rec.MarkerKey,
			&rec.Label,
			&rec.Unit,
			&maleMin,
			&maleMax,
			&femaleMin,
			&femaleMax,
			&rec.SourceURL,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}

		var convErr error
		if rec.MaleMin, convErr = parseNullDecimal(maleMin); convErr != nil {
			return nil, convErr
		}
		if rec.MaleMax, convErr = parseNullDecimal(maleMax); convErr != nil {
			return nil, convErr
		}
		if rec.FemaleMin, convErr = parseNullDecimal(femaleMin); convErr != nil {
			return nil, convErr
		}
		if rec.FemaleMax, convErr = parseNullDecimal(femaleMax); convErr != nil {
			return nil, convErr
		}

		records = append(records, rec)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return records, nil
}

func scanMetricRecord(rows pgx.Rows) (MetricRecord, error) {
	var (
		rec      MetricRecord
		valueStr string
		refMin   sql.NullString
		refMax   sql.NullString
	)

	if err := rows.Scan(
		&rec.ID,
		&rec.MarkerKey,
		&rec.Recorded,
		&valueStr,
		&rec.Unit,
		&rec.Label,
		&refMin,
		&refMax,
		&rec.CreatedAt,
	); err != nil {
		return MetricRecord{}, err
	}

	value, err := decimal.NewFromString(valueStr)
	if err != nil {
		return MetricRecord{}, fmt.Errorf("parse value: %w", err)
	}
	rec.Value = value

	if rec.RefMin, err = parseNullDecimal(refMin); err != nil {
		return MetricRecord{}, err
	}
	if rec.RefMax, err = parseNullDecimal(refMax); err != nil {
		return MetricRecord{}, err
	}

	return rec, nil
}

func nullDecimal(d *decimal.Decimal) interface{} {
	if d == nil {
		return nil
	}
	return d.String()
}

func parseNullDecimal(s sql.NullString) (*decimal.Decimal, error) {
	if !s.Valid {
		return nil, nil
	}
	d, err := decimal.NewFromString(s.String)
	if err != nil {
		return nil, fmt.Errorf("parse decimal column: %w", err)
	}
	return &d, nil
}
