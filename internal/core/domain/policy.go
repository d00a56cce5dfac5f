package domain

import "go.trai.ch/zerr"

// CleanupPolicy decides how deletion errors during cleanup are treated.
type CleanupPolicy string

const (
	// CleanupWarn logs deletion errors and continues.
	CleanupWarn CleanupPolicy = "warn"
	// CleanupFail aborts the run on the first cleanup that reports an error.
	CleanupFail CleanupPolicy = "fail"
)

// ParseCleanupPolicy converts s into a CleanupPolicy. An empty string yields CleanupWarn.
func ParseCleanupPolicy(s string) (CleanupPolicy, error) {
	switch CleanupPolicy(s) {
	case "", CleanupWarn:
		return CleanupWarn, nil
	case CleanupFail:
		return CleanupFail, nil
	default:
		return "", zerr.With(ErrInvalidCleanupPolicy, "policy", s)
	}
}
