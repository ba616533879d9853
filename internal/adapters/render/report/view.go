package report

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/bundle-deploy-cli/internal/application"
	"github.com/bnema/bundle-deploy-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Bundles renders the installed bundles of a runtime ordered as given.
func Bundles(target string, records []domain.BundleRecord) (string, error) {
	return render(func(s styles) string {
		return bundlesView(target, records, s)
	})
}

// Deploy renders the outcome of one install run.
func Deploy(results []domain.DeployResult) (string, error) {
	return render(func(s styles) string {
		return deployView(results, s)
	})
}

// Sweep renders a dependency sweep report against the declared count.
func Sweep(declared int, report domain.SweepReport) (string, error) {
	return render(func(s styles) string {
		return sweepView(declared, report, s)
	})
}

// History renders ledger entries newest first.
func History(entries []domain.DeploymentEntry) (string, error) {
	return render(func(s styles) string {
		return historyView(entries, s)
	})
}

// Targets renders configured targets without their passwords.
func Targets(summaries []application.TargetSummary) (string, error) {
	return render(func(s styles) string {
		return targetsView(summaries, s)
	})
}

func bundlesView(target string, records []domain.BundleRecord, s styles) string {
	lines := []string{
		s.title.Render("Installed bundles"),
		s.header.Render(fmt.Sprintf("target: %s  bundles: %d", target, len(records))),
	}

	if len(records) == 0 {
		lines = append(lines, s.empty.Render("No bundles installed."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	idWidth, nameWidth := 2, 4
	for _, record := range records {
		idWidth = max(idWidth, len(fmt.Sprint(int64(record.ID))))
		nameWidth = max(nameWidth, len(record.SymbolicName))
	}

	lines = append(lines, s.header.Render(fmt.Sprintf("%*s  %-*s  %-12s  %s", idWidth, "ID", nameWidth, "NAME", "STATE", "VERSION")))
	for _, record := range records {
		state := fmt.Sprintf("%-12s", record.State.Label())
		lines = append(lines, lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.detail.Render(fmt.Sprintf("%*d  ", idWidth, int64(record.ID))),
			s.name.Render(fmt.Sprintf("%-*s", nameWidth, record.SymbolicName)),
			"  ",
			stateStyle(record.State, s).Render(state),
			"  ",
			s.detail.Render(versionLabel(record.Version)),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func deployView(results []domain.DeployResult, s styles) string {
	lines := []string{
		s.title.Render("Deployment"),
		s.header.Render(fmt.Sprintf("archives: %d", len(results))),
	}

	if len(results) == 0 {
		lines = append(lines, s.empty.Render("Nothing deployed."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, result := range results {
		lines = append(lines, resultLine(result, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func resultLine(result domain.DeployResult, s styles) string {
	parts := []string{s.name.Render(result.SymbolicName), " "}

	switch {
	case result.Activated:
		parts = append(parts, s.active.Render("active"))
	case result.ActivationErr != nil:
		parts = append(parts, s.warning.Render("installed, not active"))
	default:
		parts = append(parts, s.detail.Render("installed"))
	}

	parts = append(parts, " ", s.header.Render(result.Location))
	if result.Replaced != nil {
		parts = append(parts, " ", s.header.Render(fmt.Sprintf("(replaced id %d)", int64(result.Replaced.ID))))
	}

	line := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if result.ActivationErr != nil {
		line = lipgloss.JoinVertical(lipgloss.Left, line, s.warning.Render("  "+result.ActivationErr.Error()))
	}

	return line
}

func sweepView(declared int, report domain.SweepReport, s styles) string {
	lines := []string{
		s.title.Render("Dependency sweep"),
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			renderProgressBar(len(report.Deployed), declared, 24, s),
			" ",
			s.detail.Render(fmt.Sprintf("%d/%d deployed", len(report.Deployed), declared)),
		),
	}

	if len(report.Deployed) > 0 {
		section := []string{s.header.Render("deployed")}
		for _, result := range report.Deployed {
			section = append(section, resultLine(result, s))
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, section...)))
	}

	if len(report.Failures) > 0 {
		section := []string{s.header.Render("unresolved")}
		for _, failure := range report.Failures {
			section = append(section, lipgloss.JoinHorizontal(
				lipgloss.Top,
				s.failure.Render(failure.Coordinates.String()),
				" ",
				s.detail.Render(failure.Err.Error()),
			))
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, section...)))
	}

	if len(report.Skipped) > 0 {
		section := []string{s.header.Render("skipped")}
		for _, skipped := range report.Skipped {
			section = append(section, s.empty.Render(fmt.Sprintf("%s: %s", skipped.Coordinates, skipped.Reason)))
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, section...)))
	}

	if warnings := report.Warnings(); warnings > 0 {
		lines = append(lines, s.section.Render(s.warning.Render(fmt.Sprintf("warnings: %d", warnings))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func historyView(entries []domain.DeploymentEntry, s styles) string {
	lines := []string{
		s.title.Render("Deployment history"),
		s.header.Render(fmt.Sprintf("entries: %d", len(entries))),
	}

	if len(entries) == 0 {
		lines = append(lines, s.empty.Render("No deployments recorded."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, entry := range entries {
		line := lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.header.Render(formatTimestamp(entry.At)),
			" ",
			s.name.Render(entry.SymbolicName),
			" ",
			outcomeStyle(entry.Outcome, s).Render(string(entry.Outcome)),
			" ",
			s.header.Render(entry.Target),
		)
		if entry.Message != "" {
			line = lipgloss.JoinVertical(lipgloss.Left, line, s.detail.Render("  "+entry.Message))
		}
		lines = append(lines, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func targetsView(summaries []application.TargetSummary, s styles) string {
	lines := []string{
		s.title.Render("Targets"),
		s.header.Render(fmt.Sprintf("targets: %d", len(summaries))),
	}

	if len(summaries) == 0 {
		lines = append(lines, s.empty.Render("No targets configured."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, summary := range summaries {
		target := summary.Target
		details := []string{
			fmt.Sprintf("user: %s", target.Username),
			fmt.Sprintf("tls: %s", target.TLS),
			fmt.Sprintf("password: %s", passwordLabel(summary.HasPassword)),
		}
		if target.Proxy != nil {
			details = append(details, "proxy: "+target.Proxy.URL().Host)
		}
		if target.Timeout > 0 {
			details = append(details, "timeout: "+target.Timeout.String())
		}

		lines = append(lines, s.section.Render(lipgloss.JoinVertical(
			lipgloss.Left,
			lipgloss.JoinHorizontal(lipgloss.Top, s.name.Render(string(target.ID)), " ", s.detail.Render(target.String())),
			s.detail.Render(strings.Join(details, "  ")),
		)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func stateStyle(state domain.BundleState, s styles) lipgloss.Style {
	switch state {
	case domain.BundleStateActive:
		return s.active
	case domain.BundleStateInstalled, domain.BundleStateUninstalled:
		return s.warning
	default:
		return s.detail
	}
}

func outcomeStyle(outcome domain.DeploymentOutcome, s styles) lipgloss.Style {
	switch outcome {
	case domain.OutcomeActive:
		return s.active
	case domain.OutcomeActivationFailed:
		return s.warning
	case domain.OutcomeFailed:
		return s.failure
	default:
		return s.detail
	}
}

func renderProgressBar(done int, total int, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := 0
	if total > 0 {
		filled = int(math.Round(float64(width) * float64(done) / float64(total)))
	}
	filled = min(max(filled, 0), width)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func versionLabel(version string) string {
	if version == "" {
		return "n/a"
	}
	return version
}

func passwordLabel(stored bool) string {
	if stored {
		return "stored"
	}
	return "none"
}

func formatTimestamp(at time.Time) string {
	if at.IsZero() {
		return "unknown"
	}
	return at.Local().Format("2006-01-02 15:04:05")
}
