package orchestrators

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"time"

	"lockerroom/internal/adapters/email"
	"lockerroom/internal/adapters/storage/collection"
	"lockerroom/internal/adapters/storage/settings"
	"lockerroom/internal/adapters/webhook"
	"lockerroom/internal/domain/member"
	"lockerroom/internal/domain/record"
)

// JoinInput carries the join form fields.
type JoinInput struct {
	Name  string
	Email string
	Story string
}

// JoinDeps holds dependencies for Join.
type JoinDeps struct {
	Members   *collection.Collection[member.Member]
	Settings  *settings.Store
	Forwarder webhook.Forwarder
	Notifier  email.Sender // Optional operator notification; nil disables it
	NotifyTo  string
	Now       func() time.Time
}

// JoinResult reports what happened to a join submission.
type JoinResult struct {
	Member     member.Member
	Forwarded  bool  // True when the webhook accepted the payload
	ForwardErr error // Set when a configured webhook rejected or failed
}

// ExecuteJoin handles a join form submission. The local append is the durable
// outcome and always happens first; the webhook forward is best-effort and a
// failure there never rolls the member back.
// PRE: Name and Email must be non-empty after trimming
// POST: Member persisted at the head of the collection; webhook forwarded
// once when configured; operator notified when a notifier is wired
func ExecuteJoin(ctx context.Context, input JoinInput, deps JoinDeps) (JoinResult, error) {
	now := deps.Now()
	m := member.Member{
		ID:        record.NewID(now),
		Name:      strings.TrimSpace(input.Name),
		Email:     strings.TrimSpace(input.Email),
		Story:     strings.TrimSpace(input.Story),
		Timestamp: now.UTC().Format(time.RFC3339),
		Source:    member.Source,
	}

	if err := m.Validate(); err != nil {
		return JoinResult{}, err
	}

	deps.Members.Add(ctx, m)
	slog.Info("join_event", "event", "member_joined", "id", m.ID, "email", m.Email)

	result := JoinResult{Member: m}

	if endpoint := deps.Settings.WebhookURL(ctx); endpoint != "" && deps.Forwarder != nil {
		if err := deps.Forwarder.Forward(ctx, endpoint, m.WebhookPayload()); err != nil {
			slog.Warn("join_event", "event", "webhook_failed", "id", m.ID, "error", err)
			result.ForwardErr = err
		} else {
			result.Forwarded = true
		}
	}

	notifyNewMember(ctx, deps.Notifier, deps.NotifyTo, m)

	return result, nil
}

// notifyNewMember sends a best-effort operator notification. Failures are
// logged and ignored; the join already succeeded.
func notifyNewMember(ctx context.Context, notifier email.Sender, to string, m member.Member) {
	if notifier == nil || to == "" {
		return
	}

	body := fmt.Sprintf(
		"<p><strong>%s</strong> just joined The Locker Room.</p><p>Email: %s</p><p>Story: %s</p>",
		html.EscapeString(m.Name), html.EscapeString(m.Email), html.EscapeString(m.Story))

	_, err := notifier.Send(ctx, email.SendRequest{
		To:      []string{to},
		Subject: "New member: " + m.Name,
		HTML:    body,
	})
	if err != nil {
		slog.Warn("join_event", "event", "notify_failed", "id", m.ID, "error", err)
	}
}
