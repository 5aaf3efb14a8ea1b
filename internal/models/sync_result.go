package models

// UnknownSync is displayed when the last commit date could not be determined
const UnknownSync = "Unknown"

// SyncResult is the outcome of the last-commit query for a single repo
type SyncResult interface {
	isSyncResult()
}

type syncDate struct{ Date string }
type syncFailed struct{ Reason string }
type syncNotQueried struct{}

func (syncDate) isSyncResult()       {}
func (syncFailed) isSyncResult()     {}
func (syncNotQueried) isSyncResult() {}

// NotQueried is the SyncResult for repos that were never queried
var NotQueried SyncResult = syncNotQueried{}

// Synced creates a SyncResult holding the last commit date
func Synced(date string) SyncResult {
	return syncDate{Date: date}
}

// SyncFailed creates a SyncResult for a query that ran but did not succeed
func SyncFailed(reason string) SyncResult {
	return syncFailed{Reason: reason}
}

// IsSynced returns true if the result holds a date
func IsSynced(s SyncResult) bool {
	_, ok := s.(syncDate)
	return ok
}

// SyncDisplay collapses a SyncResult to the date or "Unknown"
func SyncDisplay(s SyncResult) string {
	if d, ok := s.(syncDate); ok && d.Date != "" {
		return d.Date
	}
	return UnknownSync
}

// SyncReason returns the failure reason, if any
func SyncReason(s SyncResult) string {
	if f, ok := s.(syncFailed); ok {
		return f.Reason
	}
	return ""
}
