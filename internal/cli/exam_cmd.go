package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mcalloway/prepplan/internal/cli/formatter"
	"github.com/mcalloway/prepplan/internal/domain"
)

func newExamCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exam",
		Short: "Manage exam profiles",
	}

	cmd.AddCommand(
		newExamAddCmd(app),
		newExamListCmd(app),
		newExamInspectCmd(app),
		newExamSetDateCmd(app),
		newExamRemoveCmd(app),
	)

	return cmd
}

func newExamAddCmd(app *App) *cobra.Command {
	var name, shortID, date string
	var hours, days int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new exam profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			examDate, err := time.Parse("2006-01-02", date)
			if err != nil {
				return fmt.Errorf("invalid exam date %q: %w", date, err)
			}

			now := time.Now().UTC()
			e := &domain.Exam{
				ID:               uuid.New().String(),
				ShortID:          strings.ToUpper(shortID),
				Name:             name,
				ExamDate:         examDate,
				HoursPerDay:      hours,
				StudyDaysPerWeek: days,
				CreatedAt:        now,
				UpdatedAt:        now,
			}

			if err := app.Exams.Create(context.Background(), e, domain.DefaultCFPBlueprint()); err != nil {
				return err
			}

			fmt.Printf("Created exam %s [%s] on %s\n", e.Name, e.ShortID, e.ExamDate.Format("2006-01-02"))
			return nil
		},
	}

	cmd.Flags().StringVar(&shortID, "id", "", "Short ID (2-6 uppercase letters + optional digits, e.g. CFP01)")
	cmd.Flags().StringVar(&name, "name", "", "Exam name")
	cmd.Flags().StringVar(&date, "date", "", "Exam date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&hours, "hours", 2, "Study hours per day (1-12)")
	cmd.Flags().IntVar(&days, "days", 5, "Study days per week (1-7)")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func newExamListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List exam profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			exams, err := app.Exams.List(ctx)
			if err != nil {
				return err
			}

			// Average percent across blueprint domains per exam.
			percent := make(map[string]int, len(exams))
			for _, e := range exams {
				snapshot, err := app.Progress.Snapshot(ctx, e.ID)
				if err != nil {
					continue
				}
				blueprint, err := app.Exams.GetBlueprint(ctx, e.ID)
				if err != nil || len(blueprint) == 0 {
					continue
				}
				sum := 0
				for _, d := range blueprint {
					sum += snapshot.Percent[d.ID]
				}
				percent[e.ID] = sum / len(blueprint)
			}

			fmt.Printf("%s\n", formatter.FormatExamList(exams, percent))
			return nil
		},
	}
}

func newExamInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect EXAM",
		Short: "Show exam details and per-domain progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			e, err := app.Exams.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			blueprint, err := app.Exams.GetBlueprint(ctx, e.ID)
			if err != nil {
				return err
			}
			snapshot, err := app.Progress.Snapshot(ctx, e.ID)
			if err != nil {
				return err
			}

			weak := make(map[string]bool, len(snapshot.WeakAreas))
			for _, id := range snapshot.WeakAreas {
				weak[id] = true
			}

			var b strings.Builder
			b.WriteString(fmt.Sprintf("%s %s %s\n", formatter.Bold(e.Name),
				formatter.Dim("["+e.ShortID+"]"), formatter.TruncID(e.ID)))
			b.WriteString(fmt.Sprintf("%s %s (%s)\n", formatter.Bold("Exam date:"),
				e.ExamDate.Format("Jan 2, 2006"), formatter.RelativeDate(e.ExamDate)))
			b.WriteString(fmt.Sprintf("%s %dh/day on %d days/week\n\n",
				formatter.Bold("Commitment:"), e.HoursPerDay, e.StudyDaysPerWeek))

			headers := []string{"DOMAIN", "WEIGHT", "LESSONS", "QUESTIONS", "PROGRESS", ""}
			rows := make([][]string, 0, len(blueprint))
			for _, d := range blueprint {
				rows = append(rows, []string{
					formatter.Bold(d.Name),
					fmt.Sprintf("%d%%", d.ExamWeight),
					fmt.Sprintf("%d", d.LessonCount),
					fmt.Sprintf("%d", d.QuestionCount),
					formatter.RenderProgress(float64(snapshot.Percent[d.ID])/100, 10),
					formatter.WeakBadge(weak[d.ID]),
				})
			}
			b.WriteString(formatter.RenderTable(headers, rows))

			fmt.Println(b.String())
			return nil
		},
	}
}

func newExamSetDateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set-date EXAM DATE",
		Short: "Move the exam date",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			e, err := app.Exams.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			examDate, err := time.Parse("2006-01-02", args[1])
			if err != nil {
				return fmt.Errorf("invalid exam date %q: %w", args[1], err)
			}
			if err := app.Exams.SetDate(ctx, e.ID, examDate); err != nil {
				return err
			}
			fmt.Printf("Moved exam %s to %s. Regenerate the plan with: prepplan plan generate %s\n",
				e.ShortID, examDate.Format("2006-01-02"), e.ShortID)
			return nil
		},
	}
}

func newExamRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove EXAM",
		Short: "Remove an exam profile and its plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			e, err := app.Exams.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			if err := app.Exams.Delete(ctx, e.ID); err != nil {
				return err
			}
			fmt.Printf("Removed exam %s\n", e.ShortID)
			return nil
		},
	}
}
