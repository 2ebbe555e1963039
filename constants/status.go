package constants

// ApplicationStatus is the canonical status for rows in offer_applications.
type ApplicationStatus string

// Stable values (store these exact strings in DB).
const (
	StatusPending         ApplicationStatus = "pending"          // created at submission; re-written after a successful scoring update
	StatusRejected        ApplicationStatus = "rejected"         // terminal: candidate determined not apt
	StatusErrorProcessing ApplicationStatus = "error_processing" // terminal: analysis failed for this application
)

// terminalStatuses are statuses from which no further automated transition is permitted.
var terminalStatuses = map[ApplicationStatus]struct{}{
	StatusRejected:        {},
	StatusErrorProcessing: {},
}

// legalTransitions enumerates every transition the persistence layer accepts.
// pending -> pending is legal: a successful scoring update re-writes pending
// and embeds the verdict in the scoring payload instead of the status column.
var legalTransitions = map[ApplicationStatus][]ApplicationStatus{
	StatusPending: {StatusPending, StatusRejected, StatusErrorProcessing},
}

// IsTerminal reports whether s permits no further automated transition.
func IsTerminal(s ApplicationStatus) bool {
	_, ok := terminalStatuses[s]
	return ok
}

// CanTransition reports whether from -> to is a legal status transition.
func CanTransition(from, to ApplicationStatus) bool {
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// SweepProtected reports whether a whole-batch failure sweep must leave s
// untouched: a sweep only marks error_processing on rows that are neither
// rejected nor still pending.
func SweepProtected(s ApplicationStatus) bool {
	return s == StatusRejected || s == StatusPending
}

func ValidStatus(s string) bool {
	switch ApplicationStatus(s) {
	case StatusPending, StatusRejected, StatusErrorProcessing:
		return true
	}
	return false
}
