package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/quickta/backend/internal/models"
	"github.com/sashabaranov/go-openai"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Conversation{},
		&models.Chatlog{},
		&models.Feedback{},
		&models.Report{},
		&models.GPTModel{},
		&models.CompletionLog{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()
	user := models.User{
		UserID:   uuid.New().String(),
		Name:     name,
		UserRole: models.RoleStudent,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return &user
}

func seedCourse(t *testing.T, db *gorm.DB, code string) *models.Course {
	t.Helper()
	course := models.Course{
		CourseID:   uuid.New().String(),
		CourseCode: code,
		Semester:   "2024F",
	}
	if err := db.Create(&course).Error; err != nil {
		t.Fatalf("seed course: %v", err)
	}
	return &course
}

func seedConversation(t *testing.T, db *gorm.DB, userID, courseID string, start time.Time) *models.Conversation {
	t.Helper()
	conv := models.Conversation{
		ConversationID: uuid.New().String(),
		UserID:         userID,
		CourseID:       courseID,
		StartTime:      start,
		Status:         models.ConversationActive,
		Semester:       "2024F",
	}
	if err := db.Create(&conv).Error; err != nil {
		t.Fatalf("seed conversation: %v", err)
	}
	return &conv
}

func seedChatlog(t *testing.T, db *gorm.DB, conversationID, body string, isUser bool, at time.Time, delta time.Duration) *models.Chatlog {
	t.Helper()
	entry := models.Chatlog{
		ChatlogID:      uuid.New().String(),
		ConversationID: conversationID,
		Time:           at,
		IsUser:         isUser,
		Chatlog:        body,
		Delta:          delta,
	}
	if err := db.Create(&entry).Error; err != nil {
		t.Fatalf("seed chatlog: %v", err)
	}
	return &entry
}

func seedActiveModel(t *testing.T, db *gorm.DB, courseID, preamble string) *models.GPTModel {
	t.Helper()
	profile := models.GPTModel{
		ModelID:     uuid.New().String(),
		CourseID:    courseID,
		ModelName:   "text-davinci-002",
		Prompt:      preamble,
		Temperature: 0.9,
		MaxTokens:   1000,
		TopP:        1,
		N:           1,
		BestOf:      1,
		IsActive:    true,
	}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("seed model profile: %v", err)
	}
	return &profile
}

// fakeCompletionClient stands in for the external completion service.
type fakeCompletionClient struct {
	lastRequest openai.CompletionRequest
	calls       int
	text        string
	err         error
}

func (f *fakeCompletionClient) CreateCompletion(_ context.Context, req openai.CompletionRequest) (openai.CompletionResponse, error) {
	f.lastRequest = req
	f.calls++
	if f.err != nil {
		return openai.CompletionResponse{}, f.err
	}
	return openai.CompletionResponse{
		Choices: []openai.CompletionChoice{{Text: f.text}},
	}, nil
}

// fakeRosterStore is an in-memory stand-in for the Redis roster store.
type fakeRosterStore struct {
	byCourse map[string]map[string]bool
	byUser   map[string]map[string]bool
	failNext bool
}

func newFakeRosterStore() *fakeRosterStore {
	return &fakeRosterStore{
		byCourse: make(map[string]map[string]bool),
		byUser:   make(map[string]map[string]bool),
	}
}

func (f *fakeRosterStore) Add(_ context.Context, courseID, userID string) error {
	if f.failNext {
		f.failNext = false
		return context.DeadlineExceeded
	}
	if f.byCourse[courseID] == nil {
		f.byCourse[courseID] = make(map[string]bool)
	}
	if f.byUser[userID] == nil {
		f.byUser[userID] = make(map[string]bool)
	}
	f.byCourse[courseID][userID] = true
	f.byUser[userID][courseID] = true
	return nil
}

func (f *fakeRosterStore) Remove(_ context.Context, courseID, userID string) error {
	delete(f.byCourse[courseID], userID)
	delete(f.byUser[userID], courseID)
	return nil
}

func (f *fakeRosterStore) Members(_ context.Context, courseID string) ([]string, error) {
	members := make([]string, 0, len(f.byCourse[courseID]))
	for userID := range f.byCourse[courseID] {
		members = append(members, userID)
	}
	return members, nil
}

func (f *fakeRosterStore) CoursesOf(_ context.Context, userID string) ([]string, error) {
	courses := make([]string, 0, len(f.byUser[userID]))
	for courseID := range f.byUser[userID] {
		courses = append(courses, courseID)
	}
	return courses, nil
}
