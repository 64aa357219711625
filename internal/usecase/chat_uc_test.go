// File: internal/usecase/chat_uc_test.go
package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"ai-health-assistant/internal/domain"
	"ai-health-assistant/internal/domain/model"
)

func newChatFixture(t *testing.T, authenticated bool, backend *fakeBackend) (ChatUseCase, SessionUseCase) {
	t.Helper()
	store := &fakeTokenStore{}
	session := NewSessionUseCase(store, time.Hour, testLogger())
	if authenticated {
		session.Login("tok-abc", model.User{ID: 7, Name: "Test User"})
	}
	chat := NewChatUseCase(session, FeatureGate{}, backend, testCatalog(t), testLogger())
	return chat, session
}

func TestChatEmptyMessageIsRejected(t *testing.T) {
	chat, _ := newChatFixture(t, false, &fakeBackend{})

	for _, text := range []string{"", "   ", "\t\n"} {
		if _, err := chat.SendMessage(context.Background(), text); !errors.Is(err, domain.ErrEmptyMessage) {
			t.Fatalf("SendMessage(%q) err = %v, want ErrEmptyMessage", text, err)
		}
	}
	if got := chat.Messages(); len(got) != 0 {
		t.Fatalf("empty sends appended %d messages", len(got))
	}
}

func TestChatAnonymousCannedReply(t *testing.T) {
	backend := &fakeBackend{}
	chat, _ := newChatFixture(t, false, backend)

	reply, err := chat.SendMessage(context.Background(), "Hello")
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if !strings.Contains(reply, "AI Health & Nutrition Assistant") {
		t.Fatalf("unexpected canned reply: %q", reply)
	}
	if backend.chatCalls != 0 {
		t.Fatalf("anonymous chat reached the backend %d times", backend.chatCalls)
	}

	msgs := chat.Messages()
	if len(msgs) != 2 {
		t.Fatalf("message count = %d, want user+assistant", len(msgs))
	}
	if msgs[0].Author != model.AuthorUser || msgs[1].Author != model.AuthorAssistant {
		t.Fatalf("unexpected author order: %s, %s", msgs[0].Author, msgs[1].Author)
	}
}

func TestChatAnonymousUnmatchedInputGetsDefault(t *testing.T) {
	chat, _ := newChatFixture(t, false, &fakeBackend{})

	reply, err := chat.SendMessage(context.Background(), "zzz-unmatched")
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if !strings.Contains(reply, "basic calculations") {
		t.Fatalf("want default canned reply, got %q", reply)
	}
}

func TestChatAuthenticatedUsesBackend(t *testing.T) {
	backend := &fakeBackend{chatReply: "Eat more greens."}
	chat, _ := newChatFixture(t, true, backend)

	reply, err := chat.SendMessage(context.Background(), "what should I eat?")
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if reply != "Eat more greens." {
		t.Fatalf("reply = %q", reply)
	}
	if backend.chatCalls != 1 {
		t.Fatalf("chatCalls = %d, want 1", backend.chatCalls)
	}
	if chat.Pending() {
		t.Fatalf("pending flag not cleared after reply")
	}
}

func TestChatBackendFailureDegradesToApology(t *testing.T) {
	backend := &fakeBackend{chatErr: errors.New("upstream timeout")}
	chat, _ := newChatFixture(t, true, backend)

	reply, err := chat.SendMessage(context.Background(), "hello there")
	if err != nil {
		t.Fatalf("SendMessage must not surface transport errors, got %v", err)
	}
	if !strings.Contains(reply, "trouble responding") {
		t.Fatalf("want apology, got %q", reply)
	}

	// Exactly one assistant message even on the failure path.
	var assistants int
	for _, m := range chat.Messages() {
		if m.Author == model.AuthorAssistant {
			assistants++
		}
	}
	if assistants != 1 {
		t.Fatalf("assistant message count = %d, want 1", assistants)
	}
	if chat.Pending() {
		t.Fatalf("pending flag not cleared after failure")
	}
}

func TestChatResetClearsEverything(t *testing.T) {
	chat, _ := newChatFixture(t, false, &fakeBackend{})

	chat.AppendNotice("welcome")
	if _, err := chat.SendMessage(context.Background(), "hi"); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	chat.Reset()

	if got := chat.Messages(); len(got) != 0 {
		t.Fatalf("%d messages survived reset", len(got))
	}
	if chat.Pending() {
		t.Fatalf("pending flag survived reset")
	}
}

// A reply resolving after Reset must not leak into the fresh log.
func TestChatLateReplyAfterResetIsDropped(t *testing.T) {
	backend := &fakeBackend{chatReply: "stale"}
	store := &fakeTokenStore{}
	session := NewSessionUseCase(store, time.Hour, testLogger())
	session.Login("tok-abc", model.User{ID: 7})

	started := make(chan struct{})
	release := make(chan struct{})
	slowBackend := &blockingBackend{fakeBackend: backend, started: started, release: release}
	chat := NewChatUseCase(session, FeatureGate{}, slowBackend, testCatalog(t), testLogger())

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = chat.SendMessage(context.Background(), "slow question")
	}()

	<-started
	chat.Reset()
	close(release)
	<-done

	if got := chat.Messages(); len(got) != 0 {
		t.Fatalf("late reply leaked into reset log: %d messages", len(got))
	}
	if chat.Pending() {
		t.Fatalf("pending flag set after reset")
	}
}

type blockingBackend struct {
	*fakeBackend
	started chan struct{}
	release chan struct{}
}

func (b *blockingBackend) Chat(ctx context.Context, token, message string) (string, error) {
	close(b.started)
	<-b.release
	return b.fakeBackend.Chat(ctx, token, message)
}
