package app

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"
	"go.trai.ch/depfix/internal/core/domain"
	"go.trai.ch/depfix/internal/ui/output"
	"go.trai.ch/depfix/internal/ui/style"
)

// devServerHints are the follow-up commands suggested after a successful repair.
var devServerHints = [][2]string{
	{"npm run dev:backend ", "# Backend on port 8000"},
	{"npm run dev:frontend", "# Frontend on port 3000"},
	{"", "# Or both: npm run dev"},
}

func newRenderer(w io.Writer) *lipgloss.Renderer {
	return lipgloss.NewRenderer(w, termenv.WithProfile(output.ColorProfile(w)))
}

// title is printed when a repair starts.
const title = "depfix - Dependency Fix Script"

// printTitle prints the repair title underlined with a rule of the same width.
func printTitle(w io.Writer) error {
	r := newRenderer(w)
	heading := r.NewStyle().Bold(true).Foreground(style.Iris)
	rule := r.NewStyle().Foreground(style.Slate)

	_, err := fmt.Fprintf(w, "%s\n%s\n\n",
		heading.Render(title), rule.Render(strings.Repeat("=", lipgloss.Width(title))))
	return err
}

// printCompletion prints the completion banner and the suggested next commands.
func printCompletion(w io.Writer) error {
	r := newRenderer(w)
	success := r.NewStyle().Bold(true).Foreground(style.Green)
	command := r.NewStyle().Foreground(style.Blue)
	dim := r.NewStyle().Foreground(style.Slate)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(success.Render(style.Check+" Dependency fix completed!") + "\n")
	b.WriteString("\n")
	b.WriteString("Try running the development servers:\n")
	for _, hint := range devServerHints {
		if hint[0] == "" {
			b.WriteString("   " + dim.Render(hint[1]) + "\n")
			continue
		}
		b.WriteString("   " + command.Render(hint[0]) + " " + dim.Render(hint[1]) + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// printPlan renders the install plan as a table.
func printPlan(w io.Writer, plan []domain.Invocation) error {
	r := newRenderer(w)
	header := r.NewStyle().Bold(true).Foreground(style.Iris).Padding(0, 1)
	cell := r.NewStyle().Padding(0, 1)
	fatal := r.NewStyle().Foreground(style.Red).Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.NewStyle().Foreground(style.Slate)).
		Headers("#", "STAGE", "DIR", "FATAL", "COMMAND").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case col == 3 && row < len(plan) && plan[row].Fatal:
				return fatal
			default:
				return cell
			}
		})

	for i, inv := range plan {
		isFatal := "no"
		if inv.Fatal {
			isFatal = "yes"
		}
		t.Row(strconv.Itoa(i+1), strconv.Itoa(inv.Stage), inv.Dir, isFatal, inv.CommandLine())
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
