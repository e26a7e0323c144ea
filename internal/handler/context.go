package handler

type ContextKey string

var (
	StaffInfoCtx ContextKey = "staffInfo"
)
