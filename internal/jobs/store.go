package jobs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	// sqlite driver
	_ "github.com/mattn/go-sqlite3"

	"github.com/AvallenSolutions/lca-engine/internal/lca"
)

// ErrNotFound is returned when a job id does not exist.
var ErrNotFound = errors.New("job not found")

// Store persists calculation jobs in SQLite.
type Store struct {
	db      *sql.DB
	builder sq.StatementBuilderType
}

// NewStore opens (or creates) the job database at path.
func NewStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{
		db:      db,
		builder: sq.StatementBuilder.RunWith(db),
	}

	if err := s.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS calculation_jobs (
		id TEXT PRIMARY KEY,
		product_name TEXT NOT NULL,
		lines_json TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		result_json TEXT,
		error TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_jobs_status_created ON calculation_jobs(status, created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Create inserts a new pending job and returns it.
func (s *Store) Create(ctx context.Context, productName string, lines []lca.Line) (Job, error) {
	linesJSON, err := json.Marshal(lines)
	if err != nil {
		return Job{}, fmt.Errorf("marshal lines: %w", err)
	}

	now := time.Now().UTC()
	job := Job{
		ID:          uuid.NewString(),
		ProductName: productName,
		Lines:       lines,
		Status:      StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err = s.builder.
		Insert("calculation_jobs").
		Columns("id", "product_name", "lines_json", "status", "created_at", "updated_at").
		Values(job.ID, job.ProductName, string(linesJSON), string(job.Status), now, now).
		ExecContext(ctx)
	if err != nil {
		return Job{}, fmt.Errorf("insert job: %w", err)
	}

	return job, nil
}

// Get returns the job with the given id, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (Job, error) {
	row := s.builder.
		Select("id", "product_name", "lines_json", "status", "result_json", "error", "created_at", "updated_at").
		From("calculation_jobs").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	return scanJob(row)
}

// List returns the most recent jobs, newest first.
func (s *Store) List(ctx context.Context, limit uint64) ([]Job, error) {
	rows, err := s.builder.
		Select("id", "product_name", "lines_json", "status", "result_json", "error", "created_at", "updated_at").
		From("calculation_jobs").
		OrderBy("created_at DESC").
		Limit(limit).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("query jobs: %w", err)
	}
	defer rows.Close()

	var out []Job
	for rows.Next() {
		job, scanErr := scanJob(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, job)
	}
	return out, rows.Err()
}

// ClaimNext atomically moves the oldest pending job to processing and
// returns it. The second return value is false when no pending job
// exists.
func (s *Store) ClaimNext(ctx context.Context) (Job, bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Job{}, false, fmt.Errorf("begin claim: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query, args, err := sq.
		Select("id", "product_name", "lines_json", "status", "result_json", "error", "created_at", "updated_at").
		From("calculation_jobs").
		Where(sq.Eq{"status": string(StatusPending)}).
		OrderBy("created_at ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return Job{}, false, fmt.Errorf("build claim query: %w", err)
	}

	job, err := scanJob(tx.QueryRowContext(ctx, query, args...))
	if errors.Is(err, ErrNotFound) {
		return Job{}, false, nil
	}
	if err != nil {
		return Job{}, false, err
	}

	update, args, err := sq.
		Update("calculation_jobs").
		Set("status", string(StatusProcessing)).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": job.ID}).
		ToSql()
	if err != nil {
		return Job{}, false, fmt.Errorf("build claim update: %w", err)
	}
	if _, err := tx.ExecContext(ctx, update, args...); err != nil {
		return Job{}, false, fmt.Errorf("claim job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Job{}, false, fmt.Errorf("commit claim: %w", err)
	}

	job.Status = StatusProcessing
	return job, true, nil
}

// Complete stores the result and marks the job completed.
func (s *Store) Complete(ctx context.Context, id string, result *lca.ProductResult) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	return s.setStatus(ctx, id, StatusCompleted, string(resultJSON), "")
}

// Fail records a failure message and marks the job failed.
func (s *Store) Fail(ctx context.Context, id, message string) error {
	return s.setStatus(ctx, id, StatusFailed, "", message)
}

func (s *Store) setStatus(ctx context.Context, id string, status Status, resultJSON, errMsg string) error {
	builder := s.builder.
		Update("calculation_jobs").
		Set("status", string(status)).
		Set("error", errMsg).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id})
	if resultJSON != "" {
		builder = builder.Set("result_json", resultJSON)
	}

	res, err := builder.ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("update job %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (Job, error) {
	var (
		job        Job
		status     string
		linesJSON  string
		resultJSON sql.NullString
	)

	err := row.Scan(&job.ID, &job.ProductName, &linesJSON, &status,
		&resultJSON, &job.Error, &job.CreatedAt, &job.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Job{}, ErrNotFound
	}
	if err != nil {
		return Job{}, fmt.Errorf("scan job: %w", err)
	}

	job.Status = Status(status)

	if err := json.Unmarshal([]byte(linesJSON), &job.Lines); err != nil {
		return Job{}, fmt.Errorf("unmarshal lines for job %s: %w", job.ID, err)
	}
	if resultJSON.Valid && resultJSON.String != "" {
		var result lca.ProductResult
		if err := json.Unmarshal([]byte(resultJSON.String), &result); err != nil {
			return Job{}, fmt.Errorf("unmarshal result for job %s: %w", job.ID, err)
		}
		job.Result = &result
	}

	return job, nil
}
