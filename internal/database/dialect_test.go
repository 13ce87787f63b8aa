package database

import (
	"testing"
)

func TestDialectSQLite(t *testing.T) {
	dialect := NewSQLiteDialect()

	t.Run("DriverName", func(t *testing.T) {
		result := dialect.DriverName()
		expected := "sqlite3"
		if result != expected {
			t.Errorf("DriverName() = %v, want %v", result, expected)
		}
	})

	t.Run("SupportsLastInsertId", func(t *testing.T) {
		result := dialect.SupportsLastInsertId()
		if !result {
			t.Error("SupportsLastInsertId() should return true for SQLite")
		}
	})

	t.Run("MigrationsSubdir", func(t *testing.T) {
		result := dialect.MigrationsSubdir()
		expected := "sqlite"
		if result != expected {
			t.Errorf("MigrationsSubdir() = %v, want %v", result, expected)
		}
	})

	t.Run("DSN adds busy timeout", func(t *testing.T) {
		result := dialect.DSN(DialectConfig{Path: "games.db"})
		expected := "games.db?_busy_timeout=5000"
		if result != expected {
			t.Errorf("DSN() = %v, want %v", result, expected)
		}
	})

	t.Run("DSN leaves explicit params alone", func(t *testing.T) {
		result := dialect.DSN(DialectConfig{Path: "games.db?_busy_timeout=100"})
		expected := "games.db?_busy_timeout=100"
		if result != expected {
			t.Errorf("DSN() = %v, want %v", result, expected)
		}
	})
}

func TestDialectPostgreSQL(t *testing.T) {
	dialect := NewPostgresDialect()

	t.Run("DriverName", func(t *testing.T) {
		result := dialect.DriverName()
		expected := "postgres"
		if result != expected {
			t.Errorf("DriverName() = %v, want %v", result, expected)
		}
	})

	t.Run("SupportsLastInsertId", func(t *testing.T) {
		result := dialect.SupportsLastInsertId()
		if result {
			t.Error("SupportsLastInsertId() should return false for PostgreSQL")
		}
	})

	t.Run("MigrationsSubdir", func(t *testing.T) {
		result := dialect.MigrationsSubdir()
		expected := "postgres"
		if result != expected {
			t.Errorf("MigrationsSubdir() = %v, want %v", result, expected)
		}
	})
}

func TestDialectMySQL(t *testing.T) {
	dialect := NewMySQLDialect()

	t.Run("DriverName", func(t *testing.T) {
		result := dialect.DriverName()
		expected := "mysql"
		if result != expected {
			t.Errorf("DriverName() = %v, want %v", result, expected)
		}
	})

	t.Run("SupportsLastInsertId", func(t *testing.T) {
		result := dialect.SupportsLastInsertId()
		if !result {
			t.Error("SupportsLastInsertId() should return true for MySQL")
		}
	})

	t.Run("MigrationsSubdir", func(t *testing.T) {
		result := dialect.MigrationsSubdir()
		expected := "mysql"
		if result != expected {
			t.Errorf("MigrationsSubdir() = %v, want %v", result, expected)
		}
	})

	t.Run("DSN adds parseTime", func(t *testing.T) {
		tests := []struct {
			url      string
			expected string
		}{
			{
				url:      "user:pass@tcp(localhost:3306)/mathgames",
				expected: "user:pass@tcp(localhost:3306)/mathgames?parseTime=true",
			},
			{
				url:      "user:pass@tcp(localhost:3306)/mathgames?charset=utf8mb4",
				expected: "user:pass@tcp(localhost:3306)/mathgames?charset=utf8mb4&parseTime=true",
			},
			{
				url:      "user:pass@tcp(localhost:3306)/mathgames?parseTime=false",
				expected: "user:pass@tcp(localhost:3306)/mathgames?parseTime=false",
			},
		}

		for _, tt := range tests {
			result := dialect.DSN(DialectConfig{URL: tt.url})
			if result != tt.expected {
				t.Errorf("DSN(%v) = %v, want %v", tt.url, result, tt.expected)
			}
		}
	})
}

func TestRewriteQuery(t *testing.T) {
	tests := []struct {
		name     string
		dialect  Dialect
		query    string
		expected string
	}{
		{
			name:     "SQLite no change",
			dialect:  NewSQLiteDialect(),
			query:    "SELECT * FROM game_sessions WHERE user_id = ?",
			expected: "SELECT * FROM game_sessions WHERE user_id = ?",
		},
		{
			name:     "PostgreSQL single placeholder",
			dialect:  NewPostgresDialect(),
			query:    "SELECT * FROM user_stats WHERE user_id = ?",
			expected: "SELECT * FROM user_stats WHERE user_id = $1",
		},
		{
			name:     "PostgreSQL multiple placeholders",
			dialect:  NewPostgresDialect(),
			query:    "INSERT INTO daily_progress (user_id, date) VALUES (?, ?)",
			expected: "INSERT INTO daily_progress (user_id, date) VALUES ($1, $2)",
		},
		{
			name:     "MySQL no change",
			dialect:  NewMySQLDialect(),
			query:    "UPDATE games SET players = ?, title = ? WHERE id = ?",
			expected: "UPDATE games SET players = ?, title = ? WHERE id = ?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.dialect.RewriteQuery(tt.query)
			if result != tt.expected {
				t.Errorf("RewriteQuery() = %v, want %v", result, tt.expected)
			}
		})
	}
}
