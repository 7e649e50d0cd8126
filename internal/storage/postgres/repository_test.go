//go:build integration

package postgres

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"reflect"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/nradhesh/Outbreak-blockchain/internal/domain"
	"github.com/nradhesh/Outbreak-blockchain/internal/registry"
	"github.com/nradhesh/Outbreak-blockchain/pkg/e"
)

var (
	testPool *pgxpool.Pool
	tc       testcontainers.Container
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	user := "postgres"
	pass := "postgres"
	db := "postgres"

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": pass,
			"POSTGRES_DB":       db,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(90 * time.Second),
	}

	var err error
	tc, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := tc.Host(ctx)
	mappedPort, _ := tc.MappedPort(ctx, "5432/tcp")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, mappedPort.Port(), db)

	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("pgxpool.New:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := testPool.Ping(ctx); err != nil {
		fmt.Println("pool.Ping:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := newStore().Migrate(ctx); err != nil {
		fmt.Println("migrate:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	code := m.Run()

	testPool.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

func newStore() *RegistryStore {
	return NewRegistryStore(testPool, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func truncateAll(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(),
		`TRUNCATE TABLE registry_settings, outbreak_entries, infection_records RESTART IDENTITY`)
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}
}

func TestRegistryStore_Load_WithoutBootstrap(t *testing.T) {
	truncateAll(t)

	_, err := newStore().Load(context.Background())
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRegistryStore_Bootstrap_FirstWriterWins(t *testing.T) {
	truncateAll(t)
	store := newStore()

	st, err := store.Bootstrap(context.Background(), "admin-1", 1500)
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	if st.Administrator != "admin-1" || st.OutbreakRadiusMeters != 1500 {
		t.Fatalf("unexpected state: %+v", st)
	}
	if len(st.Entries) != 0 || len(st.Ledger) != 0 {
		t.Fatalf("expected empty registry, got %+v", st)
	}

	st, err = store.Bootstrap(context.Background(), "admin-2", 9000)
	if err != nil {
		t.Fatalf("Bootstrap again: %v", err)
	}
	if st.Administrator != "admin-1" || st.OutbreakRadiusMeters != 1500 {
		t.Fatalf("administrator must be immutable, got %+v", st)
	}
}

func TestRegistryStore_AppendInfection_PreservesOrder(t *testing.T) {
	truncateAll(t)
	store := newStore()
	ctx := context.Background()

	if _, err := store.Bootstrap(ctx, "admin", 1000); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}

	steps := []struct {
		rec   domain.InfectionRecord
		entry domain.OutbreakEntry
	}{
		{
			domain.InfectionRecord{Identity: "a", Location: "10,20", Positive: true, RecordedAt: 100},
			domain.OutbreakEntry{Location: "10,20", InfectedCount: 1, LastUpdatedAt: 100},
		},
		{
			domain.InfectionRecord{Identity: "b", Location: "-1.5,3", Positive: true, RecordedAt: 110},
			domain.OutbreakEntry{Location: "-1.5,3", InfectedCount: 1, LastUpdatedAt: 110},
		},
		{
			domain.InfectionRecord{Identity: "c", Location: "10,20", Positive: true, RecordedAt: 120},
			domain.OutbreakEntry{Location: "10,20", InfectedCount: 2, LastUpdatedAt: 120},
		},
	}
	for _, s := range steps {
		if err := store.AppendInfection(ctx, s.rec, s.entry); err != nil {
			t.Fatalf("AppendInfection: %v", err)
		}
	}

	st, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	wantEntries := []domain.OutbreakEntry{
		{Location: "10,20", InfectedCount: 2, LastUpdatedAt: 120},
		{Location: "-1.5,3", InfectedCount: 1, LastUpdatedAt: 110},
	}
	if !reflect.DeepEqual(st.Entries, wantEntries) {
		t.Fatalf("entries got=%+v want=%+v", st.Entries, wantEntries)
	}
	if len(st.Ledger) != 3 || st.Ledger[2].Identity != "c" || st.Ledger[1].RecordedAt != 110 {
		t.Fatalf("unexpected ledger: %+v", st.Ledger)
	}
}

func TestRegistryStore_AppendInfection_InvalidInput(t *testing.T) {
	truncateAll(t)

	err := newStore().AppendInfection(context.Background(),
		domain.InfectionRecord{Location: "1,1"},
		domain.OutbreakEntry{Location: "2,2", InfectedCount: 1},
	)
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRegistryStore_SetRadius(t *testing.T) {
	truncateAll(t)
	store := newStore()
	ctx := context.Background()

	if err := store.SetRadius(ctx, 10); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound before bootstrap, got %v", err)
	}

	if _, err := store.Bootstrap(ctx, "admin", 1000); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	if err := store.SetRadius(ctx, 2500); err != nil {
		t.Fatalf("SetRadius: %v", err)
	}

	st, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if st.OutbreakRadiusMeters != 2500 {
		t.Fatalf("radius got=%d", st.OutbreakRadiusMeters)
	}
}

func TestRegistryStore_AsRegistryJournal(t *testing.T) {
	truncateAll(t)
	store := newStore()
	ctx := context.Background()

	st, err := store.Bootstrap(ctx, "admin", 5000)
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	reg, err := registry.Restore(st, registry.WithJournal(store))
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}

	for _, loc := range []string{"10.000000,20.000000", "10.010000,20.000000", "10.000000,20.000000"} {
		if err := reg.ReportInfection(ctx, "alice", loc, true); err != nil {
			t.Fatalf("ReportInfection: %v", err)
		}
	}
	if err := reg.SetOutbreakRadius(ctx, "admin", 700); err != nil {
		t.Fatalf("SetOutbreakRadius: %v", err)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(loaded, reg.Snapshot()) {
		t.Fatalf("durable state diverged:\n db=%+v\nmem=%+v", loaded, reg.Snapshot())
	}
}
