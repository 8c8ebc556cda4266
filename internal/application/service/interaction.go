package service

import "context"

// Notifier surfaces messages to whoever triggered an operation.
type Notifier interface {
	Alert(msg string)
	Notice(msg string)
}

// Confirmer asks the user to approve a destructive action.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

type ConfirmFunc func(ctx context.Context, prompt string) bool

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) bool { return f(ctx, prompt) }

// AlwaysConfirm approves every prompt.
var AlwaysConfirm Confirmer = ConfirmFunc(func(context.Context, string) bool { return true })
