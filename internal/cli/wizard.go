package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/mcalloway/prepplan/internal/cli/formatter"
	"github.com/mcalloway/prepplan/internal/contract"
)

// prepplanHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func prepplanHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateIntRange accepts an integer within [lo, hi].
func validateIntRange(lo, hi int) func(string) error {
	return func(s string) error {
		v, err := strconv.Atoi(s)
		if err != nil || v < lo || v > hi {
			return fmt.Errorf("enter a number between %d and %d", lo, hi)
		}
		return nil
	}
}

// runGenerateWizard walks through exam selection, study commitment, and
// weak areas, then generates and prints the plan.
func runGenerateWizard(ctx context.Context, app *App) error {
	exams, err := app.Exams.List(ctx)
	if err != nil {
		return err
	}
	if len(exams) == 0 {
		return fmt.Errorf("no exams yet; add one with: prepplan exam add")
	}

	var examID string
	options := make([]huh.Option[string], 0, len(exams))
	for _, e := range exams {
		label := fmt.Sprintf("%s — %s (%s)", e.ShortID, e.Name, e.ExamDate.Format("Jan 2, 2006"))
		options = append(options, huh.NewOption(label, e.ID))
	}

	selectForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which Exam?").
				Options(options...).
				Value(&examID),
		),
	).WithTheme(prepplanHuhTheme()).WithShowHelp(false)
	if err := selectForm.Run(); err != nil {
		return err
	}

	exam, err := app.Exams.GetByID(ctx, examID)
	if err != nil {
		return err
	}
	blueprint, err := app.Exams.GetBlueprint(ctx, examID)
	if err != nil {
		return err
	}
	snapshot, err := app.Progress.Snapshot(ctx, examID)
	if err != nil {
		return err
	}

	hours := strconv.Itoa(exam.HoursPerDay)
	days := strconv.Itoa(exam.StudyDaysPerWeek)
	weak := append([]string(nil), snapshot.WeakAreas...)

	weakOptions := make([]huh.Option[string], 0, len(blueprint))
	for _, d := range blueprint {
		weakOptions = append(weakOptions, huh.NewOption(d.Name, d.ID))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Study hours per day").
				Placeholder(hours).
				Value(&hours).
				Validate(validateIntRange(1, 12)),
			huh.NewInput().
				Title("Study days per week").
				Placeholder(days).
				Value(&days).
				Validate(validateIntRange(1, 7)),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Weak areas").
				Description("Weak domains get extra time and run first").
				Options(weakOptions...).
				Value(&weak),
		),
	).WithTheme(prepplanHuhTheme()).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return err
	}

	// Persist wizard answers before generating.
	h, _ := strconv.Atoi(hours)
	d, _ := strconv.Atoi(days)
	if h != exam.HoursPerDay || d != exam.StudyDaysPerWeek {
		if err := app.Exams.SetCommitment(ctx, exam.ID, h, d); err != nil {
			return err
		}
	}

	wasWeak := make(map[string]bool, len(snapshot.WeakAreas))
	for _, id := range snapshot.WeakAreas {
		wasWeak[id] = true
	}
	isWeak := make(map[string]bool, len(weak))
	for _, id := range weak {
		isWeak[id] = true
	}
	for _, bd := range blueprint {
		if isWeak[bd.ID] != wasWeak[bd.ID] {
			if err := app.Progress.SetWeak(ctx, exam.ID, bd.ID, isWeak[bd.ID]); err != nil {
				return err
			}
		}
	}

	plan, err := app.Plans.Generate(ctx, contract.NewGeneratePlanRequest(exam.ID))
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", formatter.FormatPlanSummary(plan))
	return nil
}
