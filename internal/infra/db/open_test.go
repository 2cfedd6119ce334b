package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"news-api/internal/resilience/retry"
)

func TestDefaultConnectionConfig(t *testing.T) {
	cfg := DefaultConnectionConfig()

	if cfg.MaxOpenConns != 10 {
		t.Errorf("MaxOpenConns = %d, want 10", cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns != 5 {
		t.Errorf("MaxIdleConns = %d, want 5", cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime != time.Hour {
		t.Errorf("ConnMaxLifetime = %v, want 1h", cfg.ConnMaxLifetime)
	}
}

func TestConnectionConfigFromEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want ConnectionConfig
	}{
		{
			name: "defaults",
			env:  map[string]string{},
			want: DefaultConnectionConfig(),
		},
		{
			name: "custom values",
			env: map[string]string{
				"DB_MAX_OPEN_CONNS":     "40",
				"DB_MAX_IDLE_CONNS":     "8",
				"DB_CONN_MAX_LIFETIME":  "10m",
				"DB_CONN_MAX_IDLE_TIME": "2m",
			},
			want: ConnectionConfig{MaxOpenConns: 40, MaxIdleConns: 8, ConnMaxLifetime: 10 * time.Minute, ConnMaxIdleTime: 2 * time.Minute},
		},
		{
			name: "invalid and non-positive values fall back",
			env: map[string]string{
				"DB_MAX_OPEN_CONNS":    "-1",
				"DB_MAX_IDLE_CONNS":    "many",
				"DB_CONN_MAX_LIFETIME": "forever",
			},
			want: DefaultConnectionConfig(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS", "DB_CONN_MAX_LIFETIME", "DB_CONN_MAX_IDLE_TIME"} {
				t.Setenv(k, tt.env[k])
			}
			if got := ConnectionConfigFromEnv(); got != tt.want {
				t.Errorf("ConnectionConfigFromEnv() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestOpen_RequiresDSN(t *testing.T) {
	if _, err := Open(context.Background(), "", DefaultConnectionConfig()); err == nil {
		t.Fatal("expected error for empty DSN")
	}
}

func TestConnectionConfig_Apply(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock: %v", err)
	}
	defer func() { _ = db.Close() }()

	ConnectionConfig{MaxOpenConns: 7, MaxIdleConns: 3, ConnMaxLifetime: time.Minute, ConnMaxIdleTime: time.Second}.Apply(db)

	if got := db.Stats().MaxOpenConnections; got != 7 {
		t.Errorf("MaxOpenConnections = %d, want 7", got)
	}
}

func TestWaitReady(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("failed to create mock: %v", err)
	}
	defer func() { _ = db.Close() }()

	policy := retry.Policy{
		Attempts:  3,
		First:     time.Millisecond,
		Cap:       time.Millisecond,
		Factor:    1,
		Retryable: func(error) bool { return true },
	}

	mock.ExpectPing().WillReturnError(errors.New("the database system is starting up"))
	mock.ExpectPing()

	if err := WaitReady(context.Background(), db, policy); err != nil {
		t.Fatalf("WaitReady() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
