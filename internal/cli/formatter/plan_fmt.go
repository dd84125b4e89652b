package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mcalloway/prepplan/internal/contract"
	"github.com/mcalloway/prepplan/internal/domain"
)

const planProgressBarWidth = 10

// FormatExamList formats exam profiles into a styled table.
func FormatExamList(exams []*domain.Exam, percent map[string]int) string {
	if len(exams) == 0 {
		return Dim("No exams yet. Add one with: prepplan exam add")
	}

	headers := []string{"ID", "SHORT", "NAME", "EXAM DATE", "HOURS/DAY", "DAYS/WEEK", "PROGRESS"}
	rows := make([][]string, 0, len(exams))

	for _, e := range exams {
		bar := RenderProgress(float64(percent[e.ID])/100, planProgressBarWidth)
		rows = append(rows, []string{
			TruncID(e.ID),
			StylePurple.Render(e.ShortID),
			Bold(e.Name),
			RelativeDateStyled(e.ExamDate),
			fmt.Sprintf("%d", e.HoursPerDay),
			fmt.Sprintf("%d", e.StudyDaysPerWeek),
			bar,
		})
	}

	return RenderTable(headers, rows)
}

// FormatPlanSummary formats the generated plan into a styled overview box.
func FormatPlanSummary(plan *contract.Plan) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s\n", Bold("Exam date:"),
		StyleFg.Render(plan.ExamDate.Format("Jan 2, 2006"))+" "+Dim("("+RelativeDate(plan.ExamDate)+")")))
	b.WriteString(fmt.Sprintf("%s %d total, %d study days\n", Bold("Days:"), plan.TotalDays, plan.StudyDays))
	b.WriteString(fmt.Sprintf("%s %s on %d days a week\n\n",
		Bold("Commitment:"), FormatMinutes(plan.HoursPerDay*60), plan.StudyDaysPerWeek))

	headers := []string{"DOMAIN", "WEIGHT", "WINDOW", "DAYS", "Q/DAY", "LESSONS/DAY", "CARDS/DAY"}
	rows := make([][]string, 0, len(plan.Domains))
	for _, d := range plan.Domains {
		window := fmt.Sprintf("%s – %s", d.StartDate.Format("Jan 2"), d.EndDate.Format("Jan 2"))
		rows = append(rows, []string{
			Bold(d.Name),
			Dim(fmt.Sprintf("%d%%", d.ExamWeight)),
			StyleFg.Render(window),
			fmt.Sprintf("%d", d.DaysAllocated),
			fmt.Sprintf("%d", d.QuestionsPerDay),
			fmt.Sprintf("%d", d.LessonsPerDay),
			fmt.Sprintf("%d", d.FlashcardsPerDay),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	b.WriteString("\n")
	b.WriteString(Header("Daily goals") + "\n")
	g := plan.Goals
	b.WriteString(fmt.Sprintf("  %s questions, %s lessons, %s flashcards\n",
		StyleGreen.Render(fmt.Sprintf("%d", g.Questions)),
		StyleGreen.Render(fmt.Sprintf("%d", g.Lessons)),
		StyleGreen.Render(fmt.Sprintf("%d", g.Flashcards))))
	b.WriteString(fmt.Sprintf("  %s study + %s review per day\n",
		StyleBlue.Render(FormatMinutes(g.StudyMin)),
		StyleBlue.Render(FormatMinutes(g.ReviewMin))))

	return RenderBox("Study Plan", b.String())
}

// FormatMilestones formats the milestone timeline as a dated list.
func FormatMilestones(milestones []contract.Milestone, now time.Time) string {
	if len(milestones) == 0 {
		return Dim("No milestones.")
	}

	var b strings.Builder
	for _, m := range milestones {
		marker := MilestoneBadge(m.Kind)
		date := StyleFg.Render(m.Date.Format("Mon Jan 2"))
		if m.Date.Before(now) {
			date = Dim(m.Date.Format("Mon Jan 2"))
		}
		b.WriteString(fmt.Sprintf("%s  %s  %s\n", date, marker, m.Label))
	}
	return b.String()
}

// FormatWeekly formats the repeating week template.
func FormatWeekly(w contract.WeeklySchedule) string {
	var b strings.Builder
	for _, day := range w.Days {
		name := day.Weekday.String()[:3]
		if !day.StudyDay {
			b.WriteString(fmt.Sprintf("%s  %s\n", Bold(name), Dim("rest day")))
			continue
		}
		blocks := make([]string, 0, len(day.Activities))
		for _, a := range day.Activities {
			blocks = append(blocks, fmt.Sprintf("%s %s",
				activityStyle(a.Kind).Render(string(a.Kind)), Dim(FormatMinutes(a.Minutes))))
		}
		b.WriteString(fmt.Sprintf("%s  %s  %s\n",
			Bold(name), StyleFg.Render(FormatMinutes(day.PlannedMin)), strings.Join(blocks, Dim(" · "))))
	}
	return b.String()
}

func activityStyle(kind domain.ActivityKind) lipgloss.Style {
	switch kind {
	case domain.ActivityLessons:
		return StyleBlue
	case domain.ActivityPractice:
		return StyleGreen
	case domain.ActivityFlashcards:
		return StylePurple
	case domain.ActivityMockExam:
		return StyleRed
	default:
		return StyleYellow
	}
}

// FormatPhases formats the curriculum phases with their focus domains.
func FormatPhases(phases []contract.Phase) string {
	var b strings.Builder
	for i, p := range phases {
		if i > 0 {
			b.WriteString("\n")
		}
		window := fmt.Sprintf("%s – %s", p.StartDate.Format("Jan 2"), p.EndDate.Format("Jan 2"))
		b.WriteString(fmt.Sprintf("%s  %s\n", PhaseBadge(p.Kind), Dim(window)))
		b.WriteString("  " + StyleFg.Render(p.Description) + "\n")
		if len(p.Focus) > 0 {
			b.WriteString("  " + Dim("Focus: ") + StylePurple.Render(strings.Join(p.Focus, ", ")) + "\n")
		}
		for _, a := range p.Activities {
			b.WriteString(Dim("  • ") + StyleFg.Render(a) + "\n")
		}
	}
	return b.String()
}

// FormatPace formats a pace evaluation result.
func FormatPace(result *contract.PaceResult) string {
	var b strings.Builder

	b.WriteString(PaceIndicator(result.Status) + "\n\n")
	b.WriteString(fmt.Sprintf("%s %d  %s %+d\n",
		Bold("Expected lessons:"), result.ExpectedLessons, Bold("Diff:"), result.Diff))
	b.WriteString(fmt.Sprintf("%s %.1f lessons/day\n\n", Bold("Adjusted pace:"), result.AdjustedPace))
	b.WriteString(PaceColor(result.Status).Render(result.Message) + "\n")

	return RenderBox("Pace", b.String())
}

// FormatTips formats a tip list as bullet points.
func FormatTips(tips []string) string {
	var b strings.Builder
	for _, t := range tips {
		b.WriteString(Dim("  • ") + StyleFg.Render(t) + "\n")
	}
	return b.String()
}

// FormatAdvice formats per-domain recommendations with progress bars.
func FormatAdvice(advice []contract.DomainAdvice) string {
	var b strings.Builder
	for i, a := range advice {
		if i > 0 {
			b.WriteString("\n")
		}
		bar := RenderProgress(float64(a.Percent)/100, planProgressBarWidth)
		b.WriteString(fmt.Sprintf("%s %s %s\n", Bold(a.Name), Dim("("+a.DomainID+")"), bar))
		for _, r := range a.Recommendations {
			b.WriteString(Dim("  • ") + StyleFg.Render(r) + "\n")
		}
	}
	return b.String()
}

// FormatReadiness formats the weighted readiness score with its components.
func FormatReadiness(r *contract.Readiness) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s\n\n", Bold("Overall:"),
		RenderProgress(float64(r.Overall)/100, 20)))
	b.WriteString(fmt.Sprintf("  Questions   %s\n", RenderProgress(float64(r.QuestionPct)/100, planProgressBarWidth)))
	b.WriteString(fmt.Sprintf("  Lessons     %s\n", RenderProgress(float64(r.LessonPct)/100, planProgressBarWidth)))
	b.WriteString(fmt.Sprintf("  Mock exams  %s\n", RenderProgress(float64(r.MockPct)/100, planProgressBarWidth)))

	return RenderBox("Readiness", b.String())
}
