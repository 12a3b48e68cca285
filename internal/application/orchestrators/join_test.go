package orchestrators

import (
	"context"
	"errors"
	"testing"
	"time"

	"lockerroom/internal/domain/member"
)

func fixedNow() time.Time {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}

// TestExecuteJoin_NoWebhookConfigured covers the baseline scenario: a valid
// join with no webhook appends one member and succeeds.
func TestExecuteJoin_NoWebhookConfigured(t *testing.T) {
	tc := newTestCollections()
	fwd := &fakeForwarder{}
	deps := JoinDeps{
		Members: tc.Members, Settings: tc.Settings, Forwarder: fwd, Now: fixedNow,
	}

	result, err := ExecuteJoin(context.Background(), JoinInput{
		Name: "Ana", Email: "ana@x.com", Story: "",
	}, deps)
	if err != nil {
		t.Fatalf("ExecuteJoin() error: %v", err)
	}

	got := tc.Members.List(context.Background())
	if len(got) != 1 {
		t.Fatalf("members = %d, want 1", len(got))
	}
	m := got[0]
	if m.Name != "Ana" || m.Email != "ana@x.com" || m.Story != "" {
		t.Errorf("stored member = %+v", m)
	}
	if m.Source != member.Source {
		t.Errorf("source = %q, want %q", m.Source, member.Source)
	}
	if m.Timestamp == "" {
		t.Error("timestamp must be stamped")
	}
	if m.ID == 0 {
		t.Error("id must be stamped")
	}

	if fwd.calls != 0 {
		t.Errorf("forwarder called %d times with no webhook configured", fwd.calls)
	}
	if result.Forwarded || result.ForwardErr != nil {
		t.Errorf("result = %+v, want no forward activity", result)
	}
}

// TestExecuteJoin_RequiredFields verifies a join without name or email leaves
// the collection unchanged.
func TestExecuteJoin_RequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		input   JoinInput
		wantErr error
	}{
		{"empty email", JoinInput{Name: "Ana"}, member.ErrEmptyEmail},
		{"empty name", JoinInput{Email: "ana@x.com"}, member.ErrEmptyName},
		{"whitespace email", JoinInput{Name: "Ana", Email: "  "}, member.ErrEmptyEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := newTestCollections()
			deps := JoinDeps{Members: tc.Members, Settings: tc.Settings, Now: fixedNow}

			_, err := ExecuteJoin(context.Background(), tt.input, deps)
			if err != tt.wantErr {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if got := tc.Members.List(context.Background()); len(got) != 0 {
				t.Errorf("members changed on invalid input: %v", got)
			}
		})
	}
}

// TestExecuteJoin_ForwardsToWebhook verifies the flat payload reaches the
// configured endpoint.
func TestExecuteJoin_ForwardsToWebhook(t *testing.T) {
	tc := newTestCollections()
	tc.Settings.SetWebhookURL(context.Background(), "https://hooks.example.com/join")
	fwd := &fakeForwarder{}
	deps := JoinDeps{Members: tc.Members, Settings: tc.Settings, Forwarder: fwd, Now: fixedNow}

	result, err := ExecuteJoin(context.Background(), JoinInput{
		Name: "Ana", Email: "ana@x.com", Story: "hi",
	}, deps)
	if err != nil {
		t.Fatalf("ExecuteJoin() error: %v", err)
	}

	if !result.Forwarded {
		t.Error("result.Forwarded = false, want true")
	}
	if fwd.calls != 1 {
		t.Fatalf("forwarder calls = %d, want 1", fwd.calls)
	}
	if fwd.endpoint != "https://hooks.example.com/join" {
		t.Errorf("endpoint = %q", fwd.endpoint)
	}
	if fwd.payload.Get("email") != "ana@x.com" || fwd.payload.Get("source") != member.Source {
		t.Errorf("payload = %v", fwd.payload)
	}
}

// TestExecuteJoin_WebhookFailureKeepsMember verifies the local append is
// never rolled back when the webhook fails.
func TestExecuteJoin_WebhookFailureKeepsMember(t *testing.T) {
	tc := newTestCollections()
	tc.Settings.SetWebhookURL(context.Background(), "https://hooks.example.com/join")
	fwd := &fakeForwarder{err: errors.New("connection refused")}
	deps := JoinDeps{Members: tc.Members, Settings: tc.Settings, Forwarder: fwd, Now: fixedNow}

	result, err := ExecuteJoin(context.Background(), JoinInput{Name: "Ana", Email: "ana@x.com"}, deps)
	if err != nil {
		t.Fatalf("ExecuteJoin() error: %v", err)
	}

	if result.ForwardErr == nil {
		t.Error("result.ForwardErr must carry the webhook failure")
	}
	if result.Forwarded {
		t.Error("result.Forwarded must be false on failure")
	}
	if got := tc.Members.List(context.Background()); len(got) != 1 {
		t.Errorf("members = %d, want the append to survive webhook failure", len(got))
	}
}

// TestExecuteJoin_NotifiesOperator verifies the best-effort notification and
// that a notifier failure never fails the join.
func TestExecuteJoin_NotifiesOperator(t *testing.T) {
	t.Run("notification sent", func(t *testing.T) {
		tc := newTestCollections()
		sender := &fakeSender{}
		deps := JoinDeps{
			Members: tc.Members, Settings: tc.Settings,
			Notifier: sender, NotifyTo: "ops@lockerroom.club", Now: fixedNow,
		}

		if _, err := ExecuteJoin(context.Background(), JoinInput{Name: "Ana", Email: "ana@x.com"}, deps); err != nil {
			t.Fatalf("ExecuteJoin() error: %v", err)
		}
		if len(sender.reqs) != 1 {
			t.Fatalf("notifications = %d, want 1", len(sender.reqs))
		}
		if sender.reqs[0].To[0] != "ops@lockerroom.club" {
			t.Errorf("to = %v", sender.reqs[0].To)
		}
	})

	t.Run("notifier failure is swallowed", func(t *testing.T) {
		tc := newTestCollections()
		sender := &fakeSender{err: errors.New("rate limited")}
		deps := JoinDeps{
			Members: tc.Members, Settings: tc.Settings,
			Notifier: sender, NotifyTo: "ops@lockerroom.club", Now: fixedNow,
		}

		result, err := ExecuteJoin(context.Background(), JoinInput{Name: "Ana", Email: "ana@x.com"}, deps)
		if err != nil {
			t.Fatalf("ExecuteJoin() error: %v", err)
		}
		if result.ForwardErr != nil {
			t.Error("notifier failure must not be reported as a forward error")
		}
		if got := tc.Members.List(context.Background()); len(got) != 1 {
			t.Errorf("members = %d, want 1", len(got))
		}
	})
}
