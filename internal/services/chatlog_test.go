package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/quickta/backend/internal/models"
)

func newChatlogFixture(t *testing.T, client *fakeCompletionClient) (*ChatlogService, *models.Conversation) {
	t.Helper()
	db := newTestDB(t)

	user := seedUser(t, db, "Alice")
	course := seedCourse(t, db, "CSC108")
	seedActiveModel(t, db, course.CourseID, "You are a helpful TA.")

	loc, err := time.LoadLocation("America/Toronto")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, loc)
	conv := seedConversation(t, db, user.UserID, course.CourseID, start)

	transcript := NewTranscriptService(db)
	completion := NewCompletionServiceWithClient(db, client)
	return NewChatlogService(db, transcript, completion, "America/Toronto"), conv
}

func TestPostTurn_RecordsBothTurns(t *testing.T) {
	client := &fakeCompletionClient{text: " Hello! How can I help?"}
	svc, conv := newChatlogFixture(t, client)

	exchange, err := svc.PostTurn(context.Background(), conv.ConversationID,
		"Hi", "2024-03-01T09:00:30[America/Toronto]")
	if err != nil {
		t.Fatalf("PostTurn returned error: %v", err)
	}

	if !exchange.User.IsUser {
		t.Error("user turn IsUser = false")
	}
	if exchange.User.Chatlog != "Hi" {
		t.Errorf("user turn body = %q", exchange.User.Chatlog)
	}
	if exchange.User.Delta != 30*time.Second {
		t.Errorf("user delta = %v, expected 30s", exchange.User.Delta)
	}
	if exchange.User.Time != "2024-03-01T09:00:30-05:00[America/Toronto]" {
		t.Errorf("user time = %q", exchange.User.Time)
	}

	if exchange.Agent.IsUser {
		t.Error("agent turn IsUser = true")
	}
	if exchange.Agent.Chatlog != "Hello! How can I help?" {
		t.Errorf("agent turn body = %q", exchange.Agent.Chatlog)
	}
	if exchange.Agent.Delta < 0 {
		t.Errorf("agent delta = %v, expected non-negative", exchange.Agent.Delta)
	}
	if !strings.HasSuffix(exchange.Agent.Time, "[America/Toronto]") {
		t.Errorf("agent time = %q, expected [America/Toronto] suffix", exchange.Agent.Time)
	}

	turns, err := svc.List(conv.ConversationID)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(turns) != 2 {
		t.Fatalf("expected 2 chatlogs, got %d", len(turns))
	}
	if !turns[0].IsUser || turns[1].IsUser {
		t.Error("expected user turn first, agent turn second")
	}
}

func TestPostTurn_EmptyTimestampUsesDefaultZone(t *testing.T) {
	client := &fakeCompletionClient{text: "Sure."}
	svc, conv := newChatlogFixture(t, client)

	exchange, err := svc.PostTurn(context.Background(), conv.ConversationID, "Hi", "")
	if err != nil {
		t.Fatalf("PostTurn returned error: %v", err)
	}
	if !strings.HasSuffix(exchange.User.Time, "[America/Toronto]") {
		t.Errorf("user time = %q, expected default zone annotation", exchange.User.Time)
	}
}

func TestPostTurn_MalformedTimestamp(t *testing.T) {
	client := &fakeCompletionClient{text: "Sure."}
	svc, conv := newChatlogFixture(t, client)

	_, err := svc.PostTurn(context.Background(), conv.ConversationID,
		"Hi", "2024-03-01T09:00:30")
	if err == nil {
		t.Fatal("expected error for timestamp without [Zone] suffix")
	}
	if client.calls != 0 {
		t.Errorf("external calls = %d, expected none", client.calls)
	}
}

func TestPostTurn_UnknownConversation(t *testing.T) {
	client := &fakeCompletionClient{text: "Sure."}
	svc, _ := newChatlogFixture(t, client)

	_, err := svc.PostTurn(context.Background(), "nonexistent-id", "Hi", "")
	if !errors.Is(err, ErrConversationNotFound) {
		t.Fatalf("expected ErrConversationNotFound, got %v", err)
	}
}

func TestPostTurn_CompletionFailureKeepsUserTurn(t *testing.T) {
	client := &fakeCompletionClient{err: errors.New("upstream down")}
	svc, conv := newChatlogFixture(t, client)

	_, err := svc.PostTurn(context.Background(), conv.ConversationID, "Hi", "")
	if !errors.Is(err, ErrCompletionFailed) {
		t.Fatalf("expected ErrCompletionFailed, got %v", err)
	}

	turns, err := svc.List(conv.ConversationID)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(turns) != 1 {
		t.Fatalf("expected 1 chatlog, got %d", len(turns))
	}
	if !turns[0].IsUser || turns[0].Chatlog != "Hi" {
		t.Errorf("surviving turn = %+v, expected the user's turn", turns[0])
	}
}
