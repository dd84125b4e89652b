package contract

import "github.com/mcalloway/prepplan/internal/app"

type DomainAllocation = app.DomainAllocation

type Milestone = app.Milestone

type Phase = app.Phase

type Activity = app.Activity

type DayPlan = app.DayPlan

type WeeklySchedule = app.WeeklySchedule

type DailyGoals = app.DailyGoals

type Plan = app.Plan

type PaceResult = app.PaceResult

type Readiness = app.Readiness

type ProgressSnapshot = app.ProgressSnapshot

type DomainAdvice = app.DomainAdvice

type GeneratePlanRequest = app.GeneratePlanRequest

var NewGeneratePlanRequest = app.NewGeneratePlanRequest

type PaceRequest = app.PaceRequest

var NewPaceRequest = app.NewPaceRequest

type PlanErrorCode = app.PlanErrorCode

const (
	ErrExamDateNotFuture PlanErrorCode = app.ErrExamDateNotFuture
	ErrEmptyBlueprint    PlanErrorCode = app.ErrEmptyBlueprint
	ErrPlanNotFound      PlanErrorCode = app.ErrPlanNotFound
	ErrExamNotFound      PlanErrorCode = app.ErrExamNotFound
)

type PlanError = app.PlanError
