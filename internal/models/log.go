package models

// OperationLog is one persisted audit entry: the classified operation, the
// reconstructed command and the outcome of the request that triggered it.
// Entries are immutable once written; ordering is by insertion id, not by
// timestamp, so identical timestamps cannot reorder the history.
type OperationLog struct {
	Time      string `json:"time" db:"time"`
	Operation string `json:"operation" db:"operation"`
	Command   string `json:"command" db:"command"`
	Success   bool   `json:"success" db:"success"`
	Message   string `json:"message" db:"message"`
}
