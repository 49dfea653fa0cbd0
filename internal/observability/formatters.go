// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/VisageDvachevsky/AI-Devtools-Hack/internal/types"
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

// PrintClassification outputs a human-readable summary of the requirement
// classification for a role.
func (p *Printer) PrintClassification(cls *types.Classification) {
	if cls == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Mandatory: %d  Preferred: %d  Optional: %d\n",
		cls.MandatoryCount, cls.PreferredCount, cls.OptionalCount))
	sb.WriteString(fmt.Sprintf("Postings analyzed: %d", cls.Signal.PostingsAnalyzed))
	if !cls.Signal.FrequencyAvailable {
		sb.WriteString(" (no market data, employer declarations only)")
	}
	sb.WriteString("\n")

	if len(cls.Mandatory) > 0 {
		sb.WriteString("\nMandatory skills:\n")
		writeSkillList(&sb, cls.Mandatory)
	}
	if len(cls.Preferred) > 0 {
		sb.WriteString("\nPreferred skills:\n")
		writeSkillList(&sb, cls.Preferred)
	}

	p.printBox("REQUIREMENT CLASSIFICATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDecision outputs one candidate's decision with its reasons.
func (p *Printer) PrintDecision(result *types.CandidateResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	name := result.Name
	if name == "" {
		name = result.CandidateID
	}
	sb.WriteString(fmt.Sprintf("Candidate: %s\n", name))
	sb.WriteString(fmt.Sprintf("Score:     %d/100\n", result.Decision.Score))
	sb.WriteString(fmt.Sprintf("Decision:  %s", strings.ToUpper(string(result.Decision.Verdict))))
	if result.Decision.HardFail {
		sb.WriteString("  (hard fail)")
	}
	sb.WriteString("\n\n")

	count := min(len(result.Decision.Reasons), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("• %s\n", result.Decision.Reasons[i]))
	}
	if len(result.Decision.Reasons) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more reasons\n", len(result.Decision.Reasons)-maxItemsToShow))
	}

	p.printBox("CANDIDATE DECISION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRunSummary outputs the verdict tally for a completed run.
func (p *Printer) PrintRunSummary(report *types.RunReport) {
	if report == nil {
		return
	}

	tally := map[types.Verdict]int{}
	for _, result := range report.Results {
		tally[result.Decision.Verdict]++
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role:       %s\n", report.Role))
	sb.WriteString(fmt.Sprintf("Candidates: %d\n", len(report.Results)))
	sb.WriteString(fmt.Sprintf("Go: %d  Hold: %d  No: %d",
		tally[types.VerdictGo], tally[types.VerdictHold], tally[types.VerdictNo]))

	p.printBox("EVALUATION RUN SUMMARY", sb.String())
}

// writeSkillList writes up to maxItemsToShow skills as bullet lines.
func writeSkillList(sb *strings.Builder, ids []types.SkillID) {
	count := min(len(ids), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", ids[i]))
	}
	if len(ids) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(ids)-maxItemsToShow))
	}
}
