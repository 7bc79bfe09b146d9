package queries

import (
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/scoopdesk/scoopdesk/internal/models"
)

type LogQueries struct {
	db *sqlx.DB
}

func NewLogQueries(db *sqlx.DB) *LogQueries {
	return &LogQueries{db: db}
}

// Append inserts a new operation log entry. The insertion id is the entry's
// identity and read order; the timestamp is display data.
func (q *LogQueries) Append(entry *models.OperationLog) error {
	if entry.Time == "" {
		entry.Time = time.Now().Format(time.RFC3339)
	}
	query := `
		INSERT INTO logs (time, operation, command, success, message)
		VALUES (:time, :operation, :command, :success, :message)
	`
	_, err := q.db.NamedExec(query, entry)
	return err
}

// Recent returns up to limit entries, most recent first
func (q *LogQueries) Recent(limit int) ([]models.OperationLog, error) {
	entries := []models.OperationLog{}
	query := `
		SELECT time, operation, command, success, message FROM logs
		ORDER BY id DESC
		LIMIT ?
	`
	err := q.db.Select(&entries, query, limit)
	return entries, err
}

// Clear deletes all entries
func (q *LogQueries) Clear() error {
	_, err := q.db.Exec(`DELETE FROM logs`)
	return err
}
