// Package notify raises desktop notifications.
package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

// Notifier delivers a desktop notification.
type Notifier interface {
	Notify(title, message string) error
}

// Desktop sends notifications through the OS notification service.
type Desktop struct{}

// Notify implements Notifier.
func (Desktop) Notify(title, message string) error {
	return beeep.Notify(title, message, "")
}

// Nop drops every notification.
type Nop struct{}

// Notify implements Notifier.
func (Nop) Notify(string, string) error { return nil }

// FormatFetchFailure builds the notification for a failed workout load.
func FormatFetchFailure(err error) (string, string) {
	return "Workouts", fmt.Sprintf("Could not load workouts: %v", err)
}
