package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcalloway/prepplan/internal/domain"
	"github.com/mcalloway/prepplan/internal/testutil"
)

func TestExamService_CreateValidates(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	bad := testutil.NewTestExam("CFP", testutil.WithHoursPerDay(0))
	require.Error(t, svc.exams.Create(ctx, bad, domain.DefaultCFPBlueprint()))

	badBlueprint := domain.Blueprint{{ID: "GEN", Name: "General", ExamWeight: 50, LessonCount: 10, QuestionCount: 100}}
	require.Error(t, svc.exams.Create(ctx, testutil.NewTestExam("CFP"), badBlueprint))

	require.NoError(t, svc.exams.Create(ctx, testutil.NewTestExam("CFP"), domain.DefaultCFPBlueprint()))
}

func TestExamService_Resolve(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	exam := createTestExam(t, svc, testutil.WithShortID("SEC65"))

	byShort, err := svc.exams.Resolve(ctx, "SEC65")
	require.NoError(t, err)
	assert.Equal(t, exam.ID, byShort.ID)

	byID, err := svc.exams.Resolve(ctx, exam.ID)
	require.NoError(t, err)
	assert.Equal(t, exam.ID, byID.ID)

	byPrefix, err := svc.exams.Resolve(ctx, exam.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, exam.ID, byPrefix.ID)

	_, err = svc.exams.Resolve(ctx, "nonexistent")
	assert.Error(t, err)

	_, err = svc.exams.Resolve(ctx, "")
	assert.Error(t, err)
}

func TestExamService_SetDate(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	exam := createTestExam(t, svc)
	newDate := exam.ExamDate.AddDate(0, 2, 0)
	require.NoError(t, svc.exams.SetDate(ctx, exam.ID, newDate))

	got, err := svc.exams.GetByID(ctx, exam.ID)
	require.NoError(t, err)
	assert.Equal(t, newDate.Format("2006-01-02"), got.ExamDate.Format("2006-01-02"))
}

func TestExamService_SetCommitment(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	exam := createTestExam(t, svc)
	require.NoError(t, svc.exams.SetCommitment(ctx, exam.ID, 4, 6))

	got, err := svc.exams.GetByID(ctx, exam.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, got.HoursPerDay)
	assert.Equal(t, 6, got.StudyDaysPerWeek)

	assert.Error(t, svc.exams.SetCommitment(ctx, exam.ID, 0, 6), "hours out of range")
}

func TestAdviceService_TipsAndRecommendations(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	exam := createTestExam(t, svc)
	require.NoError(t, svc.progress.SetPercent(ctx, exam.ID, "TAX", 10))

	tips, err := svc.advice.Tips(ctx, exam.ID, time.Now())
	require.NoError(t, err)
	assert.NotEmpty(t, tips)

	advice, err := svc.advice.Recommendations(ctx, exam.ID)
	require.NoError(t, err)
	require.Len(t, advice, 7)
	for _, a := range advice {
		assert.NotEmpty(t, a.Recommendations, "domain %s", a.DomainID)
	}

	readiness, err := svc.advice.Readiness(ctx, exam.ID)
	require.NoError(t, err)
	assert.Zero(t, readiness.Overall, "no logged work yet")
}
