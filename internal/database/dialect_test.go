package database

import (
	"errors"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
)

func TestRewritePlaceholdersToNumbered(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{
			name:     "no placeholders",
			query:    "SELECT id FROM users",
			expected: "SELECT id FROM users",
		},
		{
			name:     "single placeholder",
			query:    "SELECT id FROM users WHERE handle = ?",
			expected: "SELECT id FROM users WHERE handle = $1",
		},
		{
			name:     "multiple placeholders",
			query:    "INSERT INTO messages (sender, recipient, body) VALUES (?, ?, ?)",
			expected: "INSERT INTO messages (sender, recipient, body) VALUES ($1, $2, $3)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := rewritePlaceholdersToNumbered(tt.query)
			if result != tt.expected {
				t.Errorf("rewritePlaceholdersToNumbered() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestSQLiteDialectKeepsPlaceholders(t *testing.T) {
	d := NewSQLiteDialect()
	query := "SELECT id FROM users WHERE handle = ?"
	if got := d.RewriteQuery(query); got != query {
		t.Errorf("SQLite RewriteQuery() = %q, want unchanged", got)
	}
}

func TestPostgresDialectRewritesPlaceholders(t *testing.T) {
	d := NewPostgresDialect()
	got := d.RewriteQuery("SELECT id FROM users WHERE handle = ? AND age >= ?")
	want := "SELECT id FROM users WHERE handle = $1 AND age >= $2"
	if got != want {
		t.Errorf("Postgres RewriteQuery() = %q, want %q", got, want)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name    string
		dialect Dialect
		err     error
		want    bool
	}{
		{
			name:    "postgres unique violation",
			dialect: NewPostgresDialect(),
			err:     &pq.Error{Code: "23505"},
			want:    true,
		},
		{
			name:    "postgres other error",
			dialect: NewPostgresDialect(),
			err:     &pq.Error{Code: "42P01"},
			want:    false,
		},
		{
			name:    "mysql duplicate entry",
			dialect: NewMySQLDialect(),
			err:     &mysql.MySQLError{Number: 1062},
			want:    true,
		},
		{
			name:    "mysql other error",
			dialect: NewMySQLDialect(),
			err:     &mysql.MySQLError{Number: 1146},
			want:    false,
		},
		{
			name:    "plain error is never a unique violation",
			dialect: NewSQLiteDialect(),
			err:     errors.New("boom"),
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dialect.IsUniqueViolation(tt.err); got != tt.want {
				t.Errorf("IsUniqueViolation() = %v, want %v", got, tt.want)
			}
		})
	}
}
