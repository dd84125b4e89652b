package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcalloway/prepplan/internal/cli/formatter"
	"github.com/mcalloway/prepplan/internal/contract"
)

func newPaceCmd(app *App) *cobra.Command {
	var lessonsDone, lessonsTotal int

	cmd := &cobra.Command{
		Use:   "pace EXAM",
		Short: "Compare logged progress against the plan timeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			e, err := app.Exams.Resolve(ctx, args[0])
			if err != nil {
				return err
			}

			req := contract.NewPaceRequest(e.ID)
			if cmd.Flags().Changed("lessons-done") {
				req.LessonsCompleted = &lessonsDone
			}
			if cmd.Flags().Changed("lessons-total") {
				req.TotalLessons = &lessonsTotal
			}

			result, err := app.Pace.Evaluate(ctx, req)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatPace(result))
			return nil
		},
	}

	cmd.Flags().IntVar(&lessonsDone, "lessons-done", 0, "Override lessons completed (default: study log)")
	cmd.Flags().IntVar(&lessonsTotal, "lessons-total", 0, "Override total lessons (default: blueprint)")

	return cmd
}
