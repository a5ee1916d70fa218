package services

import (
	"errors"
	"testing"
	"time"

	"github.com/quickta/backend/internal/models"
)

func TestAssemble_OrdersByTimestamp(t *testing.T) {
	db := newTestDB(t)
	svc := NewTranscriptService(db)

	user := seedUser(t, db, "Alice")
	course := seedCourse(t, db, "CSC108")
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	conv := seedConversation(t, db, user.UserID, course.CourseID, start)

	// Inserted out of order on purpose
	seedChatlog(t, db, conv.ConversationID, "third", true, start.Add(3*time.Minute), time.Minute)
	seedChatlog(t, db, conv.ConversationID, "first", true, start.Add(1*time.Minute), time.Minute)
	seedChatlog(t, db, conv.ConversationID, "second", false, start.Add(2*time.Minute), time.Minute)

	chatlogs, err := svc.Assemble(conv.ConversationID)
	if err != nil {
		t.Fatalf("Assemble returned error: %v", err)
	}
	if len(chatlogs) != 3 {
		t.Fatalf("expected 3 chatlogs, got %d", len(chatlogs))
	}

	want := []string{"first", "second", "third"}
	for i, body := range want {
		if chatlogs[i].Chatlog != body {
			t.Errorf("chatlogs[%d] = %q, expected %q", i, chatlogs[i].Chatlog, body)
		}
	}
	for i := 1; i < len(chatlogs); i++ {
		if !chatlogs[i].Time.After(chatlogs[i-1].Time) {
			t.Errorf("chatlogs[%d] not strictly after chatlogs[%d]", i, i-1)
		}
	}
}

func TestAssemble_UnknownConversation(t *testing.T) {
	db := newTestDB(t)
	svc := NewTranscriptService(db)

	_, err := svc.Assemble("nonexistent-id")
	if !errors.Is(err, ErrConversationNotFound) {
		t.Fatalf("expected ErrConversationNotFound, got %v", err)
	}
}

func TestComputeDelta_FirstTurnUsesStartTime(t *testing.T) {
	db := newTestDB(t)
	svc := NewTranscriptService(db)

	user := seedUser(t, db, "Alice")
	course := seedCourse(t, db, "CSC108")
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	conv := seedConversation(t, db, user.UserID, course.CourseID, start)

	delta, err := svc.ComputeDelta(conv.ConversationID, start.Add(42*time.Second))
	if err != nil {
		t.Fatalf("ComputeDelta returned error: %v", err)
	}
	if delta != 42*time.Second {
		t.Errorf("delta = %v, expected 42s", delta)
	}
}

func TestComputeDelta_AgainstLatestTurn(t *testing.T) {
	db := newTestDB(t)
	svc := NewTranscriptService(db)

	user := seedUser(t, db, "Alice")
	course := seedCourse(t, db, "CSC108")
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	conv := seedConversation(t, db, user.UserID, course.CourseID, start)

	seedChatlog(t, db, conv.ConversationID, "hi", true, start.Add(time.Minute), time.Minute)
	seedChatlog(t, db, conv.ConversationID, "hello", false, start.Add(2*time.Minute), time.Minute)

	delta, err := svc.ComputeDelta(conv.ConversationID, start.Add(2*time.Minute+30*time.Second))
	if err != nil {
		t.Fatalf("ComputeDelta returned error: %v", err)
	}
	if delta != 30*time.Second {
		t.Errorf("delta = %v, expected 30s", delta)
	}
}

func TestComputeDelta_ClampsNegative(t *testing.T) {
	db := newTestDB(t)
	svc := NewTranscriptService(db)

	user := seedUser(t, db, "Alice")
	course := seedCourse(t, db, "CSC108")
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	conv := seedConversation(t, db, user.UserID, course.CourseID, start)
	seedChatlog(t, db, conv.ConversationID, "hi", true, start.Add(time.Minute), time.Minute)

	delta, err := svc.ComputeDelta(conv.ConversationID, start)
	if err != nil {
		t.Fatalf("ComputeDelta returned error: %v", err)
	}
	if delta != 0 {
		t.Errorf("delta = %v, expected 0 for a candidate before the latest turn", delta)
	}
}

func TestComputeDelta_UnknownConversation(t *testing.T) {
	db := newTestDB(t)
	svc := NewTranscriptService(db)

	_, err := svc.ComputeDelta("nonexistent-id", time.Now())
	if !errors.Is(err, ErrConversationNotFound) {
		t.Fatalf("expected ErrConversationNotFound, got %v", err)
	}
}

func TestRender_AlternatingSpeakers(t *testing.T) {
	svc := NewTranscriptService(nil)

	chatlogs := []models.Chatlog{
		{IsUser: true, Chatlog: "What is recursion?"},
		{IsUser: false, Chatlog: "What do you think a function calling itself means?"},
	}

	got := svc.Render(chatlogs)
	want := "\n\nHuman: What is recursion?\nAI: What do you think a function calling itself means?"
	if got != want {
		t.Errorf("Render = %q, expected %q", got, want)
	}
}

func TestRender_EmptyTranscript(t *testing.T) {
	svc := NewTranscriptService(nil)
	if got := svc.Render(nil); got != "" {
		t.Errorf("Render(nil) = %q, expected empty string", got)
	}
}
