package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mcalloway/prepplan/internal/cli/formatter"
	"github.com/mcalloway/prepplan/internal/contract"
	"github.com/mcalloway/prepplan/internal/domain"
)

func newJourneyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "journey EXAM",
		Short: "Interactive milestone timeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.IsInteractive() {
				return fmt.Errorf("journey requires a terminal")
			}
			ctx := context.Background()
			e, err := app.Exams.Resolve(ctx, args[0])
			if err != nil {
				return err
			}

			model := newJourneyModel(app, e)
			_, err = tea.NewProgram(model).Run()
			return err
		},
	}
}

// journeyLoadedMsg signals that plan data has been loaded.
type journeyLoadedMsg struct {
	plan *contract.Plan
	pace *contract.PaceResult
	err  error
}

type journeyKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

var journeyKeys = journeyKeyMap{
	Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// journeyModel renders the milestone timeline with a movable cursor and
// the current pace status in the footer.
type journeyModel struct {
	app     *App
	exam    *domain.Exam
	plan    *contract.Plan
	pace    *contract.PaceResult
	cursor  int
	loading bool
	err     error
}

func newJourneyModel(app *App, exam *domain.Exam) *journeyModel {
	return &journeyModel{app: app, exam: exam, loading: true}
}

func (m *journeyModel) Init() tea.Cmd {
	return m.loadPlan()
}

func (m *journeyModel) loadPlan() tea.Cmd {
	app := m.app
	examID := m.exam.ID
	return func() tea.Msg {
		ctx := context.Background()
		plan, err := app.Plans.Get(ctx, examID)
		if err != nil {
			return journeyLoadedMsg{err: err}
		}
		pace, err := app.Pace.Evaluate(ctx, contract.NewPaceRequest(examID))
		if err != nil {
			return journeyLoadedMsg{plan: plan, err: err}
		}
		return journeyLoadedMsg{plan: plan, pace: pace}
	}
}

func (m *journeyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case journeyLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.plan = msg.plan
		m.pace = msg.pace
		// Start the cursor on the first upcoming milestone.
		now := time.Now()
		for i, ms := range m.plan.Milestones {
			if !ms.Date.Before(now) {
				m.cursor = i
				break
			}
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, journeyKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, journeyKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, journeyKeys.Down):
			if m.plan != nil && m.cursor < len(m.plan.Milestones)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m *journeyModel) View() string {
	if m.loading {
		return "\n  " + formatter.Dim("Loading plan...") + "\n"
	}
	if m.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n\n  " +
			formatter.Dim("press q to quit") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n  " + formatter.Header(m.exam.Name+" journey") + "\n\n")

	now := time.Now()
	for i, ms := range m.plan.Milestones {
		cursor := "  "
		if i == m.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}

		date := formatter.StyleFg.Render(ms.Date.Format("Mon Jan 2"))
		label := formatter.StyleFg.Render(ms.Label)
		if ms.Date.Before(now) {
			date = formatter.Dim(ms.Date.Format("Mon Jan 2"))
			label = formatter.Dim(ms.Label)
		}
		if i == m.cursor {
			label = formatter.Bold(ms.Label)
		}

		b.WriteString(fmt.Sprintf("  %s%s  %-18s %s\n",
			cursor, date, formatter.MilestoneBadge(ms.Kind), label))
	}

	b.WriteString("\n  " + formatter.RenderProgress(m.timelinePct(now), 30) + "\n")
	if m.pace != nil {
		b.WriteString("  " + formatter.PaceIndicator(m.pace.Status) + "  " +
			formatter.Dim(m.pace.Message) + "\n")
	}
	b.WriteString("\n  " + formatter.Dim("↑/↓ move · q quit") + "\n")

	return b.String()
}

// timelinePct is the elapsed fraction of the plan window, clamped to [0,1].
func (m *journeyModel) timelinePct(now time.Time) float64 {
	total := m.plan.ExamDate.Sub(m.plan.GeneratedOn)
	if total <= 0 {
		return 1
	}
	pct := float64(now.Sub(m.plan.GeneratedOn)) / float64(total)
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	return pct
}
