package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcalloway/prepplan/internal/domain"
	"github.com/mcalloway/prepplan/internal/repository"
	"github.com/mcalloway/prepplan/internal/service"
	"github.com/mcalloway/prepplan/internal/testutil"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)

	examRepo := repository.NewSQLiteExamRepo(database)
	progressRepo := repository.NewSQLiteProgressRepo(database)
	planRepo := repository.NewSQLitePlanRepo(database)

	return &App{
		Exams:         service.NewExamService(examRepo, uow),
		Progress:      service.NewProgressService(progressRepo, examRepo),
		Plans:         service.NewPlanService(examRepo, progressRepo, planRepo, uow),
		Pace:          service.NewPaceService(examRepo, progressRepo, planRepo),
		Advice:        service.NewAdviceService(examRepo, progressRepo),
		IsInteractive: func() bool { return false },
	}
}

// seedExam creates an exam profile with the default blueprint for CLI tests.
func seedExam(t *testing.T, app *App) *domain.Exam {
	t.Helper()
	exam := testutil.NewTestExam("CLI Test Exam", testutil.WithShortID("CLI01"))
	require.NoError(t, app.Exams.Create(context.Background(), exam, domain.DefaultCFPBlueprint()))
	return exam
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRootCmd_NoArgs_ShowsHelp(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, output, "prepplan")
}

func TestExamAddCmd(t *testing.T) {
	app := testApp(t)

	date := time.Now().AddDate(0, 3, 0).Format("2006-01-02")
	_, err := executeCmd(t, app, "exam", "add",
		"--id", "CFP01", "--name", "CFP March", "--date", date)
	require.NoError(t, err)

	exam, err := app.Exams.Resolve(context.Background(), "CFP01")
	require.NoError(t, err)
	assert.Equal(t, "CFP March", exam.Name)
	assert.Equal(t, 2, exam.HoursPerDay)
}

func TestExamAddCmd_InvalidDate(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "exam", "add",
		"--id", "CFP01", "--name", "CFP", "--date", "03/15/2026")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid exam date")
}

func TestExamAddCmd_RequiresFlags(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "exam", "add", "--name", "CFP")
	assert.Error(t, err)
}

func TestPlanGenerateAndShowCmd(t *testing.T) {
	app := testApp(t)
	seedExam(t, app)

	_, err := executeCmd(t, app, "plan", "generate", "CLI01")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "plan", "show", "CLI01")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "plan", "milestones", "CLI01")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "plan", "schedule", "CLI01")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "plan", "phases", "CLI01")
	require.NoError(t, err)
}

func TestPlanShowCmd_WithoutPlan(t *testing.T) {
	app := testApp(t)
	seedExam(t, app)

	_, err := executeCmd(t, app, "plan", "show", "CLI01")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "PLAN_NOT_FOUND")
}

func TestPlanGenerateCmd_UnknownExam(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "plan", "generate", "NOPE")
	assert.Error(t, err)
}

func TestProgressCmds(t *testing.T) {
	app := testApp(t)
	exam := seedExam(t, app)
	ctx := context.Background()

	_, err := executeCmd(t, app, "progress", "set", "CLI01", "tax", "40")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "progress", "weak", "CLI01", "EST")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "progress", "log", "CLI01",
		"--lessons", "2", "--questions", "30")
	require.NoError(t, err)

	snapshot, err := app.Progress.Snapshot(ctx, exam.ID)
	require.NoError(t, err)
	assert.Equal(t, 40, snapshot.Percent["TAX"])
	assert.Equal(t, []string{"EST"}, snapshot.WeakAreas)

	totals, err := app.Progress.Totals(ctx, exam.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, totals.Lessons)
}

func TestProgressSetCmd_InvalidPercent(t *testing.T) {
	app := testApp(t)
	seedExam(t, app)

	_, err := executeCmd(t, app, "progress", "set", "CLI01", "TAX", "150")
	assert.Error(t, err)
}

func TestPaceCmd(t *testing.T) {
	app := testApp(t)
	seedExam(t, app)

	_, err := executeCmd(t, app, "plan", "generate", "CLI01")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "pace", "CLI01")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "pace", "CLI01", "--lessons-done", "10", "--lessons-total", "68")
	require.NoError(t, err)
}

func TestPaceCmd_WithoutPlan(t *testing.T) {
	app := testApp(t)
	seedExam(t, app)

	_, err := executeCmd(t, app, "pace", "CLI01")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "PLAN_NOT_FOUND")
}

func TestTipsCmd(t *testing.T) {
	app := testApp(t)
	seedExam(t, app)

	_, err := executeCmd(t, app, "tips", "CLI01")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "tips", "CLI01", "--recommend")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "tips", "CLI01", "--readiness")
	require.NoError(t, err)
}

func TestExamSetDateAndRemoveCmd(t *testing.T) {
	app := testApp(t)
	exam := seedExam(t, app)
	ctx := context.Background()

	newDate := time.Now().AddDate(0, 4, 0).Format("2006-01-02")
	_, err := executeCmd(t, app, "exam", "set-date", "CLI01", newDate)
	require.NoError(t, err)

	got, err := app.Exams.GetByID(ctx, exam.ID)
	require.NoError(t, err)
	assert.Equal(t, newDate, got.ExamDate.Format("2006-01-02"))

	_, err = executeCmd(t, app, "exam", "remove", "CLI01")
	require.NoError(t, err)

	_, err = app.Exams.Resolve(ctx, "CLI01")
	assert.Error(t, err)
}

func TestJourneyCmd_RequiresTerminal(t *testing.T) {
	app := testApp(t)
	seedExam(t, app)

	_, err := executeCmd(t, app, "journey", "CLI01")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "terminal")
}
