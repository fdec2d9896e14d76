// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/ecoproject/funding-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintIntake outputs a human-readable summary of the project intake.
func (p *Printer) PrintIntake(intake *types.ProjectIntake) {
	if intake == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Organization: %s\n", intake.Organization))
	if intake.ProjectTitle != "" {
		sb.WriteString(fmt.Sprintf("Project:      %s\n", intake.ProjectTitle))
	}
	if intake.Region != "" {
		sb.WriteString(fmt.Sprintf("Region:       %s\n", intake.Region))
	}
	if intake.ApplicantType != "" {
		sb.WriteString(fmt.Sprintf("Applicant:    %s\n", intake.ApplicantType))
	}
	if intake.BudgetRange != "" {
		sb.WriteString(fmt.Sprintf("Budget:       %s\n", intake.BudgetRange))
	}
	if intake.Stage != "" {
		sb.WriteString(fmt.Sprintf("Stage:        %s\n", intake.Stage))
	}
	if len(intake.ProjectTypes) > 0 {
		sb.WriteString(fmt.Sprintf("Types:        %s\n", strings.Join(intake.ProjectTypes, ", ")))
	}
	if len(intake.Themes) > 0 {
		sb.WriteString(fmt.Sprintf("Themes:       %s\n", strings.Join(intake.Themes, ", ")))
	}

	p.printBox("PROJECT INTAKE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatches outputs the top N ranked programs with their score breakdowns
// and the catalog details an applicant weighs next: grant range, deadline, and
// competitiveness.
func (p *Printer) PrintMatches(matches *types.RankedMatches, programs []types.FundingProgram) {
	if matches == nil || len(matches.Ranked) == 0 {
		return
	}

	byName := make(map[string]*types.FundingProgram, len(programs))
	for i := range programs {
		byName[programs[i].Name()] = &programs[i]
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total programs scored: %d\n\n", len(matches.Ranked)))

	count := min(len(matches.Ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		match := matches.Ranked[i]
		name := match.ProgramName
		if len(name) > 44 {
			name = name[:41] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, name))
		sb.WriteString(fmt.Sprintf("    Score: %.0f/100\n", match.Score))
		sb.WriteString(fmt.Sprintf("    %s\n", formatBreakdown(&match.Breakdown)))
		if program, ok := byName[match.ProgramName]; ok {
			sb.WriteString(fmt.Sprintf("    Grant: %s to %s | Due: %s\n",
				program.MinGrantDisplay(), program.MaxGrantDisplay(), displayDeadline(program)))
			sb.WriteString(fmt.Sprintf("    Competitiveness: %s\n", program.Competitiveness()))
			if description := program.Description(); description != "" {
				sb.WriteString(fmt.Sprintf("    %s\n", description))
			}
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(matches.Ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more programs", len(matches.Ranked)-maxItemsToShow))
	}

	p.printBox("TOP MATCHES", sb.String())
}

// PrintReadiness outputs a readiness score and remaining-effort estimate.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintReadiness(programName string, score float64, weeksRemaining float64) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Program:   %s\n", programName))
	sb.WriteString(fmt.Sprintf("Readiness: %.0f%%\n", score))
	sb.WriteString(fmt.Sprintf("Remaining: ~%.1f weeks of preparation", weeksRemaining))

	p.printBox("APPLICATION READINESS", sb.String())
}

func displayDeadline(program *types.FundingProgram) string {
	deadline := program.Deadline()
	if deadline == "" {
		return "—"
	}
	return deadline
}

// formatBreakdown compacts a score breakdown into a single line, keeping only
// nonzero bonus deltas.
func formatBreakdown(b *types.ScoreBreakdown) string {
	parts := []string{
		fmt.Sprintf("R%d", b.Region),
		fmt.Sprintf("A%d", b.Applicant),
		fmt.Sprintf("P%d", b.ProjectType),
		fmt.Sprintf("T%d", b.Theme),
		fmt.Sprintf("B%d", b.Budget),
	}

	deltas := map[string]int{
		"stage":    b.StageBonus,
		"keyword":  b.KeywordBonus,
		"deadline": b.DeadlineDelta,
		"priority": b.ThemePriority,
		"partner":  b.PartnershipBonus,
	}
	for _, key := range []string{"stage", "keyword", "deadline", "priority", "partner"} {
		if deltas[key] != 0 {
			parts = append(parts, fmt.Sprintf("%s%+d", key, deltas[key]))
		}
	}

	return strings.Join(parts, " ")
}
