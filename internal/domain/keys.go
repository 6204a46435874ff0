package domain

type CtxKey string

const (
	KeyUserEmail CtxKey = "Email"
	KeyUserRole  CtxKey = "Role"
)
