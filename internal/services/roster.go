package services

import (
	"context"

	"github.com/quickta/backend/internal/models"
	"github.com/quickta/backend/pkg/logger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// OpResult is the discriminated outcome of a roster mutation. Roster
// operations report expected failures (unknown course, store unavailable) as
// a value rather than an error, so callers have to branch on it.
type OpResult bool

const (
	OperationSuccessful OpResult = true
	OperationFailed     OpResult = false
)

// rosterStore is the document-store surface the roster adapter needs.
// Membership mutations are atomic set operations, so two concurrent adds to
// the same course cannot lose an update.
type rosterStore interface {
	Add(ctx context.Context, courseID, userID string) error
	Remove(ctx context.Context, courseID, userID string) error
	Members(ctx context.Context, courseID string) ([]string, error)
	CoursesOf(ctx context.Context, userID string) ([]string, error)
}

const (
	courseRosterPrefix = "roster:course:"
	userCoursesPrefix  = "roster:user:"
)

// redisRosterStore keeps one set per course plus a reverse index per user.
type redisRosterStore struct {
	rdb *redis.Client
}

func (r *redisRosterStore) Add(ctx context.Context, courseID, userID string) error {
	pipe := r.rdb.TxPipeline()
	pipe.SAdd(ctx, courseRosterPrefix+courseID, userID)
	pipe.SAdd(ctx, userCoursesPrefix+userID, courseID)
	_, err := pipe.Exec(ctx)
	return err
}

func (r *redisRosterStore) Remove(ctx context.Context, courseID, userID string) error {
	pipe := r.rdb.TxPipeline()
	pipe.SRem(ctx, courseRosterPrefix+courseID, userID)
	pipe.SRem(ctx, userCoursesPrefix+userID, courseID)
	_, err := pipe.Exec(ctx)
	return err
}

func (r *redisRosterStore) Members(ctx context.Context, courseID string) ([]string, error) {
	return r.rdb.SMembers(ctx, courseRosterPrefix+courseID).Result()
}

func (r *redisRosterStore) CoursesOf(ctx context.Context, userID string) ([]string, error) {
	return r.rdb.SMembers(ctx, userCoursesPrefix+userID).Result()
}

// RosterService maintains the per-course set of authorized user identifiers.
type RosterService struct {
	db    *gorm.DB
	store rosterStore
}

func NewRosterService(db *gorm.DB, rdb *redis.Client) *RosterService {
	return &RosterService{db: db, store: &redisRosterStore{rdb: rdb}}
}

// NewRosterServiceWithStore wires an explicit roster store.
func NewRosterServiceWithStore(db *gorm.DB, store rosterStore) *RosterService {
	return &RosterService{db: db, store: store}
}

// Add authorizes a user for a course. Adding an already-present user is a
// no-op and still succeeds.
func (s *RosterService) Add(ctx context.Context, courseID, userID string) OpResult {
	if !s.courseExists(courseID) {
		return OperationFailed
	}
	if err := s.store.Add(ctx, courseID, userID); err != nil {
		logger.Error().Err(err).Str("course_id", courseID).Str("user_id", userID).Msg("roster add failed")
		return OperationFailed
	}
	return OperationSuccessful
}

// Remove revokes a user's access to a course. Removing an absent user is a
// no-op and still succeeds.
func (s *RosterService) Remove(ctx context.Context, courseID, userID string) OpResult {
	if !s.courseExists(courseID) {
		return OperationFailed
	}
	if err := s.store.Remove(ctx, courseID, userID); err != nil {
		logger.Error().Err(err).Str("course_id", courseID).Str("user_id", userID).Msg("roster remove failed")
		return OperationFailed
	}
	return OperationSuccessful
}

// List returns the user identifiers authorized for a course, or
// OperationFailed when the course does not exist.
func (s *RosterService) List(ctx context.Context, courseID string) ([]string, OpResult) {
	if !s.courseExists(courseID) {
		return nil, OperationFailed
	}
	members, err := s.store.Members(ctx, courseID)
	if err != nil {
		logger.Error().Err(err).Str("course_id", courseID).Msg("roster list failed")
		return nil, OperationFailed
	}
	return members, OperationSuccessful
}

// CoursesOf returns the course identifiers a user is authorized for, or
// OperationFailed when the user does not exist.
func (s *RosterService) CoursesOf(ctx context.Context, userID string) ([]string, OpResult) {
	var count int64
	if err := s.db.Model(&models.User{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		logger.Error().Err(err).Str("user_id", userID).Msg("user lookup failed")
		return nil, OperationFailed
	}
	if count == 0 {
		return nil, OperationFailed
	}
	courses, err := s.store.CoursesOf(ctx, userID)
	if err != nil {
		logger.Error().Err(err).Str("user_id", userID).Msg("roster courses lookup failed")
		return nil, OperationFailed
	}
	return courses, OperationSuccessful
}

func (s *RosterService) courseExists(courseID string) bool {
	var count int64
	if err := s.db.Model(&models.Course{}).Where("course_id = ?", courseID).Count(&count).Error; err != nil {
		logger.Error().Err(err).Str("course_id", courseID).Msg("course lookup failed")
		return false
	}
	return count > 0
}
