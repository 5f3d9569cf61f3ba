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

var steps = []migrationStep{
	{
		Name: "create_table_contact_submissions",
		SQL: `CREATE TABLE IF NOT EXISTS contact_submissions (
  id         BIGSERIAL   PRIMARY KEY,
  full_name  VARCHAR(100) NOT NULL,
  email      VARCHAR(150) NOT NULL,
  phone      VARCHAR(20)  NOT NULL,
  message    TEXT         NOT NULL,
  status     TEXT         NOT NULL DEFAULT 'NEW' CHECK (status IN ('NEW', 'REVIEWED')),
  created_at TIMESTAMPTZ  NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_contact_submissions_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_contact_submissions_created_at ON contact_submissions (created_at);`,
	},
	{
		Name: "create_table_career_applications",
		SQL: `CREATE TABLE IF NOT EXISTS career_applications (
  id                BIGSERIAL    PRIMARY KEY,
  first_name        VARCHAR(60)  NOT NULL,
  last_name         VARCHAR(60)  NOT NULL,
  email             VARCHAR(150) NOT NULL,
  mobile_number     VARCHAR(20)  NOT NULL,
  gender            TEXT         NOT NULL CHECK (gender IN ('MALE', 'FEMALE')),
  position          TEXT         NOT NULL,
  date_of_birth     DATE         NOT NULL,
  qualification     TEXT         NOT NULL,
  website           TEXT         NOT NULL DEFAULT '',
  last_company_name TEXT         NOT NULL,
  experience_years  INT          NOT NULL CHECK (experience_years BETWEEN 0 AND 50),
  experience_months INT          NOT NULL CHECK (experience_months BETWEEN 0 AND 11),
  reference         TEXT         NOT NULL DEFAULT '',
  resume_path       TEXT         NOT NULL UNIQUE,
  created_at        TIMESTAMPTZ  NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_career_applications_email",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_career_applications_email ON career_applications (email);`,
	},
	{
		Name: "create_table_queries",
		SQL: `CREATE TABLE IF NOT EXISTS queries (
  id                 BIGSERIAL    PRIMARY KEY,
  name               VARCHAR(100) NOT NULL,
  designation        VARCHAR(100) NOT NULL DEFAULT '',
  organization       VARCHAR(150) NOT NULL DEFAULT '',
  office_address     VARCHAR(255) NOT NULL DEFAULT '',
  city               VARCHAR(100) NOT NULL,
  email              VARCHAR(150) NOT NULL,
  telephone_no       VARCHAR(20)  NOT NULL DEFAULT '',
  mobile_no          VARCHAR(20)  NOT NULL,
  other_professional TEXT         NOT NULL CHECK (other_professional IN ('YES', 'NO')),
  subject            TEXT         NOT NULL,
  query_text         TEXT         NOT NULL,
  created_at         TIMESTAMPTZ  NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_news",
		SQL: `CREATE TABLE IF NOT EXISTS news (
  id         BIGSERIAL   PRIMARY KEY,
  category   TEXT        NOT NULL CHECK (category IN ('Business', 'National', 'International')),
  title      TEXT        NOT NULL,
  url        TEXT        NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_posts",
		SQL: `CREATE TABLE IF NOT EXISTS posts (
  id         BIGSERIAL   PRIMARY KEY,
  type       TEXT        NOT NULL CHECK (type IN ('NEWS', 'DUE_DATE_REMAINDER', 'BLOGS')),
  content    TEXT        NOT NULL,
  link_url   TEXT        NOT NULL DEFAULT '',
  date       DATE        NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_admins",
		SQL: `CREATE TABLE IF NOT EXISTS admins (
  id            BIGSERIAL   PRIMARY KEY,
  username      TEXT        NOT NULL UNIQUE,
  password_hash TEXT        NOT NULL,
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
}

// EnsureMigrated checks if the sentinel table exists and runs migrations if it
// doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('public.contact_submissions') IS NOT NULL"
	err := db.QueryRowContext(ctx, query).Scan(&exists)
	if err != nil {
		logJSON(loc, map[string]any{
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
		logJSON(loc, map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			logJSON(loc, map[string]any{
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

		logJSON(loc, map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(loc, map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func logJSON(loc *time.Location, data map[string]any) {
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
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
