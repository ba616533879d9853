package domain

import (
	"fmt"
	"time"
)

// ActivationPolicy decides what a failed activation means for the whole
// install-and-start operation.
type ActivationPolicy string

const (
	ActivationStrict  ActivationPolicy = "strict"
	ActivationLenient ActivationPolicy = "lenient"
)

func ParseActivationPolicy(raw string) (ActivationPolicy, error) {
	switch policy := ActivationPolicy(raw); policy {
	case "":
		return ActivationStrict, nil
	case ActivationStrict, ActivationLenient:
		return policy, nil
	default:
		return "", fmt.Errorf("unsupported activation policy %q", raw)
	}
}

// ReplaceStrategy selects how an already installed module with the same
// symbolic name is replaced.
type ReplaceStrategy string

const (
	// ReplaceUninstallFirst looks the module up by name and uninstalls it
	// before uploading.
	ReplaceUninstallFirst ReplaceStrategy = "uninstall-first"

	// ReplaceOverride sends an override signal with the upload and leaves the
	// replacement to the runtime.
	ReplaceOverride ReplaceStrategy = "override"
)

func ParseReplaceStrategy(raw string) (ReplaceStrategy, error) {
	switch strategy := ReplaceStrategy(raw); strategy {
	case "":
		return ReplaceUninstallFirst, nil
	case ReplaceUninstallFirst, ReplaceOverride:
		return strategy, nil
	default:
		return "", fmt.Errorf("unsupported replace strategy %q", raw)
	}
}

type DeployResult struct {
	Path         string
	SymbolicName string
	Location     string

	// Replaced is the record uninstalled to make room, if any.
	Replaced      *BundleRecord
	Activated     bool
	ActivationErr error
}

type SkippedDependency struct {
	Coordinates Coordinates
	Reason      string
}

type ResolutionFailure struct {
	Coordinates Coordinates
	Err         error
}

type SweepReport struct {
	Deployed []DeployResult
	Skipped  []SkippedDependency
	Failures []ResolutionFailure
}

// Warnings counts the non fatal problems of a sweep.
func (r SweepReport) Warnings() int {
	warnings := len(r.Failures)
	for _, deployed := range r.Deployed {
		if deployed.ActivationErr != nil {
			warnings++
		}
	}
	return warnings
}

type DeploymentOutcome string

const (
	OutcomeActive           DeploymentOutcome = "active"
	OutcomeInstalled        DeploymentOutcome = "installed"
	OutcomeActivationFailed DeploymentOutcome = "activation_failed"
	OutcomeFailed           DeploymentOutcome = "failed"
)

// DeploymentEntry is one line of the local deployment history.
type DeploymentEntry struct {
	RunID        string
	Target       string
	SymbolicName string
	Path         string
	Location     string
	Outcome      DeploymentOutcome
	Message      string
	At           time.Time
}
