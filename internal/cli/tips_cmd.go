package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mcalloway/prepplan/internal/cli/formatter"
)

func newTipsCmd(app *App) *cobra.Command {
	var recommend, readiness bool

	cmd := &cobra.Command{
		Use:   "tips EXAM",
		Short: "Study tips, domain recommendations, and readiness",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			e, err := app.Exams.Resolve(ctx, args[0])
			if err != nil {
				return err
			}

			if readiness {
				r, err := app.Advice.Readiness(ctx, e.ID)
				if err != nil {
					return err
				}
				fmt.Printf("%s\n", formatter.FormatReadiness(r))
				return nil
			}

			if recommend {
				advice, err := app.Advice.Recommendations(ctx, e.ID)
				if err != nil {
					return err
				}
				fmt.Println(formatter.Header("Recommendations"))
				fmt.Print(formatter.FormatAdvice(advice))
				return nil
			}

			tips, err := app.Advice.Tips(ctx, e.ID, time.Now())
			if err != nil {
				return err
			}
			fmt.Println(formatter.Header("Study tips"))
			fmt.Print(formatter.FormatTips(tips))
			return nil
		},
	}

	cmd.Flags().BoolVar(&recommend, "recommend", false, "Show per-domain recommendations instead")
	cmd.Flags().BoolVar(&readiness, "readiness", false, "Show the readiness score instead")

	return cmd
}
