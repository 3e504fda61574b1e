package database

import (
	"strings"
	"testing"
)

func TestRewritePlaceholdersToNumbered(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{
			name:     "no placeholders",
			query:    "SELECT state_value FROM app_state",
			expected: "SELECT state_value FROM app_state",
		},
		{
			name:     "single placeholder",
			query:    "SELECT state_value FROM app_state WHERE state_key = ?",
			expected: "SELECT state_value FROM app_state WHERE state_key = $1",
		},
		{
			name:     "multiple placeholders",
			query:    "INSERT INTO sessions (id, student_id, expires_at) VALUES (?, ?, ?)",
			expected: "INSERT INTO sessions (id, student_id, expires_at) VALUES ($1, $2, $3)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rewritePlaceholdersToNumbered(tt.query)
			if got != tt.expected {
				t.Errorf("rewritePlaceholdersToNumbered() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDialectProperties(t *testing.T) {
	tests := []struct {
		name      string
		dialect   Dialect
		driver    string
		subdir    string
		rewritesQ bool
	}{
		{name: "sqlite", dialect: NewSQLiteDialect(), driver: "sqlite3", subdir: "sqlite", rewritesQ: false},
		{name: "postgres", dialect: NewPostgresDialect(), driver: "postgres", subdir: "postgres", rewritesQ: true},
		{name: "mysql", dialect: NewMySQLDialect(), driver: "mysql", subdir: "mysql", rewritesQ: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dialect.DriverName(); got != tt.driver {
				t.Errorf("DriverName() = %q, want %q", got, tt.driver)
			}
			if got := tt.dialect.MigrationsSubdir(); got != tt.subdir {
				t.Errorf("MigrationsSubdir() = %q, want %q", got, tt.subdir)
			}

			query := "SELECT 1 WHERE a = ?"
			rewritten := tt.dialect.RewriteQuery(query)
			if tt.rewritesQ && rewritten == query {
				t.Error("expected placeholder rewriting")
			}
			if !tt.rewritesQ && rewritten != query {
				t.Errorf("unexpected rewrite: %q", rewritten)
			}
		})
	}
}

func TestUpsertStateQueryTargetsStateTable(t *testing.T) {
	dialects := []Dialect{NewSQLiteDialect(), NewPostgresDialect(), NewMySQLDialect()}
	for _, d := range dialects {
		q := d.UpsertStateQuery()
		if !strings.Contains(q, "app_state") {
			t.Errorf("%s upsert does not target app_state: %q", d.DriverName(), q)
		}
		if !strings.Contains(q, "state_value") {
			t.Errorf("%s upsert does not set state_value: %q", d.DriverName(), q)
		}
	}
}

func TestDSNSelection(t *testing.T) {
	cfg := DialectConfig{Path: "/tmp/ecolearn.db", URL: "postgres://localhost/ecolearn"}

	if got := NewSQLiteDialect().DSN(cfg); got != cfg.Path {
		t.Errorf("sqlite DSN = %q, want path", got)
	}
	if got := NewPostgresDialect().DSN(cfg); got != cfg.URL {
		t.Errorf("postgres DSN = %q, want URL", got)
	}
	if got := NewMySQLDialect().DSN(cfg); got != cfg.URL {
		t.Errorf("mysql DSN = %q, want URL", got)
	}
}
