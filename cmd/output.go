package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/bnema/bundle-deploy-cli/internal/domain"
	"github.com/spf13/cobra"
)

type bundleView struct {
	ID           int64  `json:"id"`
	SymbolicName string `json:"symbolicName"`
	Version      string `json:"version,omitempty"`
	Location     string `json:"location,omitempty"`
	State        string `json:"state"`
}

type deployResultView struct {
	Path            string `json:"path"`
	SymbolicName    string `json:"symbolicName,omitempty"`
	Location        string `json:"location,omitempty"`
	ReplacedID      *int64 `json:"replacedId,omitempty"`
	Activated       bool   `json:"activated"`
	ActivationError string `json:"activationError,omitempty"`
}

type dependencyView struct {
	Coordinates string `json:"coordinates"`
	Reason      string `json:"reason"`
}

type sweepView struct {
	Deployed []deployResultView `json:"deployed"`
	Skipped  []dependencyView   `json:"skipped"`
	Failures []dependencyView   `json:"failures"`
}

type historyView struct {
	RunID        string    `json:"runId"`
	Target       string    `json:"target"`
	SymbolicName string    `json:"symbolicName"`
	Path         string    `json:"path,omitempty"`
	Location     string    `json:"location,omitempty"`
	Outcome      string    `json:"outcome"`
	Message      string    `json:"message,omitempty"`
	At           time.Time `json:"at"`
}

func writeJSON(cmd *cobra.Command, value any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

func writeRendered(cmd *cobra.Command, rendered string, err error) error {
	if err != nil {
		return fmt.Errorf("render output: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func toBundleViews(records []domain.BundleRecord) []bundleView {
	views := make([]bundleView, 0, len(records))
	for _, record := range records {
		views = append(views, bundleView{
			ID:           int64(record.ID),
			SymbolicName: record.SymbolicName,
			Version:      record.Version,
			Location:     record.Location,
			State:        record.State.Label(),
		})
	}
	return views
}

func toDeployResultViews(results []domain.DeployResult) []deployResultView {
	views := make([]deployResultView, 0, len(results))
	for _, result := range results {
		view := deployResultView{
			Path:         result.Path,
			SymbolicName: result.SymbolicName,
			Location:     result.Location,
			Activated:    result.Activated,
		}
		if result.Replaced != nil {
			id := int64(result.Replaced.ID)
			view.ReplacedID = &id
		}
		if result.ActivationErr != nil {
			view.ActivationError = result.ActivationErr.Error()
		}
		views = append(views, view)
	}
	return views
}

func toSweepView(report domain.SweepReport) sweepView {
	view := sweepView{
		Deployed: toDeployResultViews(report.Deployed),
		Skipped:  make([]dependencyView, 0, len(report.Skipped)),
		Failures: make([]dependencyView, 0, len(report.Failures)),
	}
	for _, skipped := range report.Skipped {
		view.Skipped = append(view.Skipped, dependencyView{Coordinates: skipped.Coordinates.String(), Reason: skipped.Reason})
	}
	for _, failure := range report.Failures {
		view.Failures = append(view.Failures, dependencyView{Coordinates: failure.Coordinates.String(), Reason: failure.Err.Error()})
	}
	return view
}

func toHistoryViews(entries []domain.DeploymentEntry) []historyView {
	views := make([]historyView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, historyView{
			RunID:        entry.RunID,
			Target:       entry.Target,
			SymbolicName: entry.SymbolicName,
			Path:         entry.Path,
			Location:     entry.Location,
			Outcome:      string(entry.Outcome),
			Message:      entry.Message,
			At:           entry.At,
		})
	}
	return views
}
