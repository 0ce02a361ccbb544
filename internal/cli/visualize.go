package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rkessler/thistlecube/internal/cube"
)

var visualizeCmd = &cobra.Command{
	Use:   "visualize <scramble>",
	Short: "Step through a scramble's solution interactively",
	Long: `Solves the given scramble and opens a terminal UI that steps through
the resulting solution one turn at a time, showing the cubelet-label grid
after each turn.

Keyboard shortcuts:
  n / space  - apply the next turn
  p          - undo the last turn
  r          - reset to the scrambled state
  q / esc    - quit`,
	Args: cobra.MinimumNArgs(1),
	RunE: runVisualize,
}

func init() {
	rootCmd.AddCommand(visualizeCmd)
}

func runVisualize(cmd *cobra.Command, args []string) error {
	scrambleText := strings.Join(args, " ")
	scramble, err := cube.ParseTurns(scrambleText)
	if err != nil {
		return fmt.Errorf("invalid scramble: %w", err)
	}

	s, err := newSolver()
	if err != nil {
		return err
	}

	start := cube.NewSolved()
	start.ApplyTurns(scramble)

	solution, err := s.Solve(start)
	if err != nil {
		return fmt.Errorf("could not solve scramble: %w", err)
	}

	model := newVisualizeModel(start, solution)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

type visualizeModel struct {
	start    cube.State
	current  cube.State
	solution []cube.Turn
	applied  int
	quitting bool
}

func newVisualizeModel(start cube.State, solution []cube.Turn) *visualizeModel {
	return &visualizeModel{start: start, current: start, solution: solution}
}

func (m *visualizeModel) Init() tea.Cmd {
	return nil
}

func (m *visualizeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "n", " ":
		if m.applied < len(m.solution) {
			m.current.ApplyTurn(m.solution[m.applied])
			m.applied++
		}

	case "p":
		if m.applied > 0 {
			m.applied--
			m.current = m.start
			for i := 0; i < m.applied; i++ {
				m.current.ApplyTurn(m.solution[i])
			}
		}

	case "r":
		m.applied = 0
		m.current = m.start
	}

	return m, nil
}

func (m *visualizeModel) View() string {
	if m.quitting {
		return "Bye.\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("thistlecube visualize"))
	b.WriteString("\n\n")

	b.WriteString(statusStyle.Render(fmt.Sprintf("turn %d/%d", m.applied, len(m.solution))))
	b.WriteString("\n\n")

	if m.applied < len(m.solution) {
		b.WriteString(fmt.Sprintf("next: %s\n\n", moveStyle.Render(m.solution[m.applied].Notation())))
	} else if m.current.IsSolved() {
		b.WriteString(phaseStyle.Render("solved!"))
		b.WriteString("\n\n")
	}

	b.WriteString(m.current.String())
	b.WriteString("\n")

	b.WriteString(helpStyle.Render("n/space=next  p=prev  r=reset  q=quit"))
	b.WriteString("\n")

	return b.String()
}
