package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mcalloway/prepplan/internal/domain"
)

func newProgressCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Track study progress",
	}

	cmd.AddCommand(
		newProgressSetCmd(app),
		newProgressWeakCmd(app),
		newProgressLogCmd(app),
	)

	return cmd
}

func newProgressSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set EXAM DOMAIN PERCENT",
		Short: "Set completion percent for a domain",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			e, err := app.Exams.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			percent, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid percent %q: %w", args[2], err)
			}
			domainID := strings.ToUpper(args[1])
			if err := app.Progress.SetPercent(ctx, e.ID, domainID, percent); err != nil {
				return err
			}
			fmt.Printf("Set %s to %d%% for exam %s\n", domainID, percent, e.ShortID)
			return nil
		},
	}
}

func newProgressWeakCmd(app *App) *cobra.Command {
	var clear bool

	cmd := &cobra.Command{
		Use:   "weak EXAM DOMAIN",
		Short: "Flag a domain as a weak area",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			e, err := app.Exams.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			domainID := strings.ToUpper(args[1])
			if err := app.Progress.SetWeak(ctx, e.ID, domainID, !clear); err != nil {
				return err
			}
			if clear {
				fmt.Printf("Cleared weak flag on %s for exam %s\n", domainID, e.ShortID)
			} else {
				fmt.Printf("Flagged %s as a weak area for exam %s\n", domainID, e.ShortID)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "Clear the weak flag instead of setting it")

	return cmd
}

func newProgressLogCmd(app *App) *cobra.Command {
	var lessons, questions, flashcards, mocks int
	var note, on string

	cmd := &cobra.Command{
		Use:   "log EXAM",
		Short: "Log a study session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			e, err := app.Exams.Resolve(ctx, args[0])
			if err != nil {
				return err
			}

			entry := &domain.StudyLogEntry{
				ExamID:     e.ID,
				Lessons:    lessons,
				Questions:  questions,
				Flashcards: flashcards,
				MockExams:  mocks,
				Note:       note,
			}
			if on != "" {
				loggedOn, err := time.Parse("2006-01-02", on)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", on, err)
				}
				entry.LoggedOn = loggedOn
			}

			if err := app.Progress.Log(ctx, entry); err != nil {
				return err
			}

			totals, err := app.Progress.Totals(ctx, e.ID)
			if err != nil {
				return err
			}
			fmt.Printf("Logged. Totals for %s: %d lessons, %d questions, %d flashcards, %d mocks\n",
				e.ShortID, totals.Lessons, totals.Questions, totals.Flashcards, totals.MockExams)
			return nil
		},
	}

	cmd.Flags().IntVar(&lessons, "lessons", 0, "Lessons completed")
	cmd.Flags().IntVar(&questions, "questions", 0, "Practice questions answered")
	cmd.Flags().IntVar(&flashcards, "flashcards", 0, "Flashcards reviewed")
	cmd.Flags().IntVar(&mocks, "mocks", 0, "Mock exams taken")
	cmd.Flags().StringVar(&note, "note", "", "Session note")
	cmd.Flags().StringVar(&on, "on", "", "Session date (YYYY-MM-DD, default today)")

	return cmd
}
