package services

import "errors"

// Sentinel errors surfaced to handlers. Missing-entity errors map to 404,
// ErrCompletionFailed maps to 503.
var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrCourseNotFound       = errors.New("course not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrFeedbackNotFound     = errors.New("feedback not found")
	ErrReportNotFound       = errors.New("report not found")
	ErrModelNotFound        = errors.New("model not found")
	ErrNoActiveModel        = errors.New("no active model for course")
	ErrCompletionFailed     = errors.New("completion service unavailable")
)
