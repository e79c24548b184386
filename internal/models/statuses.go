package models

type UserRole string
type JobStatus string

const (
	UserRoleClient UserRole = "client"
	UserRoleFundi  UserRole = "fundi"

	JobStatusOpen       JobStatus = "open"
	JobStatusAssigned   JobStatus = "assigned"
	JobStatusInProgress JobStatus = "in-progress"
	JobStatusCompleted  JobStatus = "completed"
)

// ValidJobStatus reports whether s is one of the known posting statuses.
// Note: statuses are plain labels, there is no transition guard.
func ValidJobStatus(s JobStatus) bool {
	switch s {
	case JobStatusOpen, JobStatusAssigned, JobStatusInProgress, JobStatusCompleted:
		return true
	}
	return false
}
