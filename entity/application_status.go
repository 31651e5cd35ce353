package entity

import "fmt"

// Status is the moderation state of a mentor application.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusDeclined  Status = "declined"
	StatusSuspended Status = "suspended"
	StatusBlocked   Status = "blocked"
)

// ParseStatus converts a raw string to a Status, rejecting unknown values.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusPending, StatusApproved, StatusDeclined, StatusSuspended, StatusBlocked:
		return st, nil
	}
	return "", fmt.Errorf("unknown application status %q", s)
}
