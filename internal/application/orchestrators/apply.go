package orchestrators

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"lockerroom/internal/adapters/storage/settings"
	"lockerroom/internal/adapters/webhook"
	"lockerroom/internal/domain/application"
)

// ApplyInput carries the apply form fields.
type ApplyInput struct {
	Name    string
	Email   string
	Phone   string
	Goals   string
	Program string // Title of the program being applied for
}

// ApplyDeps holds dependencies for Apply.
type ApplyDeps struct {
	Settings  *settings.Store
	Forwarder webhook.Forwarder
	Now       func() time.Time
}

// ApplyResult reports what happened to an application submission.
type ApplyResult struct {
	Application application.Application
	Forwarded   bool
	ForwardErr  error
}

// ExecuteApply handles an apply form submission. Applications are never
// persisted locally; the webhook is the only destination, and only when one
// is configured.
// PRE: Name and Email must be non-empty after trimming
// POST: Application forwarded once when a webhook is configured
func ExecuteApply(ctx context.Context, input ApplyInput, deps ApplyDeps) (ApplyResult, error) {
	a := application.Application{
		Name:      strings.TrimSpace(input.Name),
		Email:     strings.TrimSpace(input.Email),
		Phone:     strings.TrimSpace(input.Phone),
		Goals:     strings.TrimSpace(input.Goals),
		Program:   strings.TrimSpace(input.Program),
		Timestamp: deps.Now().UTC().Format(time.RFC3339),
	}

	if err := a.Validate(); err != nil {
		return ApplyResult{}, err
	}

	result := ApplyResult{Application: a}

	if endpoint := deps.Settings.WebhookURL(ctx); endpoint != "" && deps.Forwarder != nil {
		if err := deps.Forwarder.Forward(ctx, endpoint, a.WebhookPayload()); err != nil {
			slog.Warn("apply_event", "event", "webhook_failed", "program", a.Program, "error", err)
			result.ForwardErr = err
			return result, nil
		}
		result.Forwarded = true
	}

	slog.Info("apply_event", "event", "application_submitted", "program", a.Program, "forwarded", result.Forwarded)
	return result, nil
}
