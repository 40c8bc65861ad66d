package constants

type TaskStatus string

const (
	StatusOpen      TaskStatus = "open"
	StatusAccepted  TaskStatus = "accepted"
	StatusCompleted TaskStatus = "completed"
)
