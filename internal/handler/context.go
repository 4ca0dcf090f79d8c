package handler

type ContextKey string

var (
	RoleCtxKey      ContextKey = "role"
	SubCtxKey       ContextKey = "sub"
	ForecastCtx     ContextKey = "forecast"
	SchedulePlanCtx ContextKey = "schedulePlan"
)
