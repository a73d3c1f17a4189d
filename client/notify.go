package client

import "log"

// Notifier receives the single success or error message each store operation
// produces.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// LogNotifier writes notifications to the standard logger.
type LogNotifier struct{}

func (LogNotifier) Success(message string) {
	log.Printf("OK: %s", message)
}

func (LogNotifier) Error(message string) {
	log.Printf("ERROR: %s", message)
}
