package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nradhesh/Outbreak-blockchain/internal/domain"
	"github.com/nradhesh/Outbreak-blockchain/pkg/e"
)

const schema = `
CREATE TABLE IF NOT EXISTS registry_settings (
	id                smallint PRIMARY KEY DEFAULT 1 CHECK (id = 1),
	administrator     text     NOT NULL,
	outbreak_radius_m bigint   NOT NULL CHECK (outbreak_radius_m >= 0)
);

CREATE TABLE IF NOT EXISTS outbreak_entries (
	seq             bigserial PRIMARY KEY,
	location        text      NOT NULL UNIQUE,
	infected_count  bigint    NOT NULL CHECK (infected_count > 0),
	last_updated_at bigint    NOT NULL
);

CREATE TABLE IF NOT EXISTS infection_records (
	seq         bigserial PRIMARY KEY,
	identity    text      NOT NULL,
	location    text      NOT NULL,
	positive    boolean   NOT NULL,
	recorded_at bigint    NOT NULL
);
`

// RegistryStore persists the registry state. Rows are read back in seq
// order, which is the insertion order of the registry.
type RegistryStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewRegistryStore(pool *pgxpool.Pool, logger *slog.Logger) *RegistryStore {
	return &RegistryStore{pool: pool, logger: logger}
}

func (s *RegistryStore) Migrate(ctx context.Context) error {
	const op = "postgres.Registry.Migrate"

	if _, err := s.pool.Exec(ctx, schema); err != nil {
		s.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

// Bootstrap stores the administrator and the initial radius on first start.
// An existing row wins: the administrator is fixed once created.
func (s *RegistryStore) Bootstrap(ctx context.Context, admin domain.Identity, radius uint64) (domain.RegistryState, error) {
	const op = "postgres.Registry.Bootstrap"

	const query = `
		INSERT INTO registry_settings (id, administrator, outbreak_radius_m)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO NOTHING
	`

	cmd, err := s.pool.Exec(ctx, query, string(admin), int64(radius))
	if err != nil {
		s.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return domain.RegistryState{}, e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 1 {
		s.logger.Info("registry created", slog.String("administrator", string(admin)), slog.Uint64("radius_m", radius))
	}

	state, err := s.Load(ctx)
	if err != nil {
		return domain.RegistryState{}, err
	}
	if state.Administrator != admin {
		s.logger.Warn("configured administrator ignored, registry already has one",
			slog.String("configured", string(admin)),
			slog.String("stored", string(state.Administrator)),
		)
	}
	return state, nil
}

func (s *RegistryStore) Load(ctx context.Context) (domain.RegistryState, error) {
	const op = "postgres.Registry.Load"

	var state domain.RegistryState

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		s.logger.Error("db begin failed", slog.String("op", op), slog.Any("error", err))
		return state, e.WrapError(ctx, op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var (
		admin  string
		radius int64
	)
	err = tx.QueryRow(ctx, `SELECT administrator, outbreak_radius_m FROM registry_settings WHERE id = 1`).Scan(&admin, &radius)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return state, fmt.Errorf("%s: settings: %w", op, e.ErrNotFound)
		}
		s.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return state, e.WrapError(ctx, op, err)
	}
	state.Administrator = domain.Identity(admin)
	state.OutbreakRadiusMeters = uint64(radius)

	rows, err := tx.Query(ctx, `
		SELECT location, infected_count, last_updated_at
		FROM outbreak_entries
		ORDER BY seq
	`)
	if err != nil {
		s.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return state, e.WrapError(ctx, op, err)
	}
	state.Entries, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.OutbreakEntry, error) {
		var (
			en    domain.OutbreakEntry
			count int64
		)
		err := row.Scan(&en.Location, &count, &en.LastUpdatedAt)
		en.InfectedCount = uint64(count)
		return en, err
	})
	if err != nil {
		s.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
		return state, e.WrapError(ctx, op, err)
	}

	rows, err = tx.Query(ctx, `
		SELECT identity, location, positive, recorded_at
		FROM infection_records
		ORDER BY seq
	`)
	if err != nil {
		s.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return state, e.WrapError(ctx, op, err)
	}
	state.Ledger, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.InfectionRecord, error) {
		var (
			rec      domain.InfectionRecord
			identity string
		)
		err := row.Scan(&identity, &rec.Location, &rec.Positive, &rec.RecordedAt)
		rec.Identity = domain.Identity(identity)
		return rec, err
	})
	if err != nil {
		s.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
		return state, e.WrapError(ctx, op, err)
	}

	return state, nil
}

// AppendInfection writes the ledger record and the updated entry in one
// transaction.
func (s *RegistryStore) AppendInfection(ctx context.Context, rec domain.InfectionRecord, entry domain.OutbreakEntry) error {
	const op = "postgres.Registry.AppendInfection"

	if rec.Location == "" || rec.Location != entry.Location || entry.InfectedCount == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		s.logger.Error("db begin failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	const insertRecord = `
		INSERT INTO infection_records (identity, location, positive, recorded_at)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := tx.Exec(ctx, insertRecord, string(rec.Identity), rec.Location, rec.Positive, rec.RecordedAt); err != nil {
		s.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	const upsertEntry = `
		INSERT INTO outbreak_entries (location, infected_count, last_updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (location) DO UPDATE
		SET infected_count  = EXCLUDED.infected_count,
			last_updated_at = EXCLUDED.last_updated_at
	`
	if _, err := tx.Exec(ctx, upsertEntry, entry.Location, int64(entry.InfectedCount), entry.LastUpdatedAt); err != nil {
		s.logger.Error("db exec failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.String("location", entry.Location),
		)
		return e.WrapError(ctx, op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		s.logger.Error("db commit failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (s *RegistryStore) SetRadius(ctx context.Context, radius uint64) error {
	const op = "postgres.Registry.SetRadius"

	cmd, err := s.pool.Exec(ctx, `UPDATE registry_settings SET outbreak_radius_m = $1 WHERE id = 1`, int64(radius))
	if err != nil {
		s.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}
