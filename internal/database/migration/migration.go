package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

// The three collections are independent: no foreign keys between them.
// IDs are generated tokens assigned by the application, stored as TEXT.
var steps = []migrationStep{
	{
		Name: "create_table_pdf_documents",
		SQL: `CREATE TABLE IF NOT EXISTS pdf_documents (
  id          TEXT        PRIMARY KEY,
  title       TEXT        NOT NULL,
  exam_type   TEXT        NOT NULL,
  subject     TEXT        NOT NULL,
  batch       TEXT        NOT NULL,
  filename    TEXT        NOT NULL,
  file_path   TEXT        NOT NULL UNIQUE,
  description TEXT        NOT NULL DEFAULT '',
  upload_date TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_pdf_documents_upload_date",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_pdf_documents_upload_date ON pdf_documents (upload_date);`,
	},
	{
		Name: "create_index_pdf_documents_exam_type",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_pdf_documents_exam_type ON pdf_documents (exam_type);`,
	},
	{
		Name: "create_table_contact_messages",
		SQL: `CREATE TABLE IF NOT EXISTS contact_messages (
  id                TEXT        PRIMARY KEY,
  name              TEXT        NOT NULL,
  phone             TEXT        NOT NULL,
  email             TEXT        NOT NULL,
  course_interested TEXT        NOT NULL,
  message           TEXT        NOT NULL DEFAULT '',
  timestamp         TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_contact_messages_timestamp",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_contact_messages_timestamp ON contact_messages (timestamp);`,
	},
	{
		Name: "create_table_class_schedules",
		SQL: `CREATE TABLE IF NOT EXISTS class_schedules (
  id           TEXT        PRIMARY KEY,
  exam_type    TEXT        NOT NULL,
  subject      TEXT        NOT NULL,
  day_of_week  TEXT        NOT NULL,
  class_time   TEXT        NOT NULL,
  is_online    BOOLEAN     NOT NULL DEFAULT false,
  meeting_link TEXT        NOT NULL DEFAULT '',
  created_date TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
}

// EnsureMigrated checks if the 'pdf_documents' sentinel table exists and runs
// migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, dbHost string) error {
	start := time.Now()

	logJSON(map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('public.pdf_documents') IS NOT NULL"
	err := db.QueryRowContext(ctx, query).Scan(&exists)
	if err != nil {
		logJSON(map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logJSON(map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	logJSON(map[string]any{
		"component": "database",
		"event":     "db_migration_start",
		"status":    "in_progress",
		"db_host":   dbHost,
	})

	for _, step := range steps {
		stepStart := time.Now()
		_, err := db.ExecContext(ctx, step.SQL)
		if err != nil {
			logJSON(map[string]any{
				"component":        "database",
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"error_message":    err.Error(),
				"db_host":          dbHost,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logJSON(map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func logJSON(data map[string]any) {
	data["ts"] = time.Now().UTC().Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
