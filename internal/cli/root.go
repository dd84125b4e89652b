package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcalloway/prepplan/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Exams    service.ExamService
	Progress service.ProgressService
	Plans    service.PlanService
	Pace     service.PaceService
	Advice   service.AdviceService

	// IsInteractive reports whether stdin is a terminal; interactive
	// wizards are skipped when it returns false.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "prepplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "prepplan",
		Short: "Exam study planner and pace tracker",
	}

	root.AddCommand(
		newExamCmd(app),
		newProgressCmd(app),
		newPlanCmd(app),
		newPaceCmd(app),
		newTipsCmd(app),
		newJourneyCmd(app),
	)

	return root
}
