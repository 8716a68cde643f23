package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Connect opens the configured database and initializes the schema.
// DB_TYPE selects the backend: "sqlite" (the default) opens a file at
// DATABASE_PATH, "postgres" connects to DATABASE_URL.
func Connect() (*sqlx.DB, error) {
	dbType := os.Getenv("DB_TYPE")
	if dbType == "" {
		dbType = "sqlite"
	}

	var db *sqlx.DB
	var err error

	switch dbType {
	case "sqlite":
		path := os.Getenv("DATABASE_PATH")
		if path == "" {
			if err := os.MkdirAll("data", 0755); err != nil {
				return nil, fmt.Errorf("failed to create data directory: %v", err)
			}
			path = filepath.Join("data", "frasebot.db")
		}
		db, err = sqlx.Connect("sqlite3", path)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %v", err)
		}
		// SQLite doesn't support multiple writers
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)

	case "postgres":
		url := os.Getenv("DATABASE_URL")
		if url == "" {
			return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
		}
		db, err = sqlx.Connect("postgres", url)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %v", err)
		}

	default:
		return nil, fmt.Errorf("unsupported DB_TYPE: %s", dbType)
	}

	if err := initializeSchema(db, dbType); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// initializeSchema creates the tables if they don't exist
func initializeSchema(db *sqlx.DB, dbType string) error {
	historyID := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if dbType == "postgres" {
		historyID = "BIGSERIAL PRIMARY KEY"
	}

	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS phrases (
			id INTEGER PRIMARY KEY,
			source_text TEXT NOT NULL,
			target_text TEXT NOT NULL,
			level TEXT NOT NULL DEFAULT ''
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create phrases table: %v", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS review_records (
			phrase_id INTEGER PRIMARY KEY,
			repetitions INTEGER NOT NULL DEFAULT 0,
			ease REAL NOT NULL DEFAULT 2.5,
			interval_days INTEGER NOT NULL DEFAULT 0,
			lapses INTEGER NOT NULL DEFAULT 0,
			correct_count INTEGER NOT NULL DEFAULT 0,
			wrong_count INTEGER NOT NULL DEFAULT 0,
			due_date TEXT NOT NULL,
			last_answered_at TEXT NOT NULL DEFAULT ''
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create review_records table: %v", err)
	}

	_, err = db.Exec(fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS history_entries (
			id %s,
			timestamp TEXT NOT NULL,
			session_id TEXT NOT NULL DEFAULT '',
			phrase_id INTEGER NOT NULL,
			source_text TEXT NOT NULL,
			target_text TEXT NOT NULL,
			user_answer TEXT NOT NULL DEFAULT '',
			correct BOOLEAN NOT NULL DEFAULT FALSE,
			skipped BOOLEAN NOT NULL DEFAULT FALSE,
			level TEXT NOT NULL DEFAULT ''
		)
	`, historyID))
	if err != nil {
		return fmt.Errorf("failed to create history_entries table: %v", err)
	}

	return nil
}
