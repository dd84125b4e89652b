package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mcalloway/prepplan/internal/cli/formatter"
	"github.com/mcalloway/prepplan/internal/contract"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate and view the study plan",
	}

	cmd.AddCommand(
		newPlanGenerateCmd(app),
		newPlanShowCmd(app),
		newPlanMilestonesCmd(app),
		newPlanScheduleCmd(app),
		newPlanPhasesCmd(app),
	)

	return cmd
}

func newPlanGenerateCmd(app *App) *cobra.Command {
	var interactive, degraded bool

	cmd := &cobra.Command{
		Use:   "generate [EXAM]",
		Short: "Generate a study plan from the blueprint and current progress",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if interactive {
				if !app.IsInteractive() {
					return fmt.Errorf("--interactive requires a terminal")
				}
				return runGenerateWizard(ctx, app)
			}

			if len(args) == 0 {
				return fmt.Errorf("exam reference is required (or use --interactive)")
			}
			e, err := app.Exams.Resolve(ctx, args[0])
			if err != nil {
				return err
			}

			req := contract.NewGeneratePlanRequest(e.ID)
			req.AllowDegraded = degraded
			plan, err := app.Plans.Generate(ctx, req)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatPlanSummary(plan))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Run the guided setup wizard")
	cmd.Flags().BoolVar(&degraded, "allow-degraded", false, "Produce a one-day plan when the exam date has passed")

	return cmd
}

func newPlanShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show EXAM",
		Short: "Show the stored study plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			e, err := app.Exams.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			plan, err := app.Plans.Get(ctx, e.ID)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatPlanSummary(plan))
			return nil
		},
	}
}

func newPlanMilestonesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "milestones EXAM",
		Short: "Show the milestone timeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			e, err := app.Exams.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			plan, err := app.Plans.Get(ctx, e.ID)
			if err != nil {
				return err
			}
			fmt.Println(formatter.Header("Milestones"))
			fmt.Print(formatter.FormatMilestones(plan.Milestones, time.Now()))
			return nil
		},
	}
}

func newPlanScheduleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "schedule EXAM",
		Short: "Show the weekly schedule template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			e, err := app.Exams.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			plan, err := app.Plans.Get(ctx, e.ID)
			if err != nil {
				return err
			}
			fmt.Println(formatter.Header("Weekly schedule"))
			fmt.Print(formatter.FormatWeekly(plan.Weekly))
			return nil
		},
	}
}

func newPlanPhasesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "phases EXAM",
		Short: "Show the curriculum phases",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			e, err := app.Exams.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			plan, err := app.Plans.Get(ctx, e.ID)
			if err != nil {
				return err
			}
			fmt.Println(formatter.Header("Phases"))
			fmt.Print(formatter.FormatPhases(plan.Phases))
			return nil
		},
	}
}
