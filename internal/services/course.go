package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/quickta/backend/internal/models"
	"gorm.io/gorm"
)

// CourseService owns course records. Rosters live in RosterService.
type CourseService struct {
	db *gorm.DB
}

func NewCourseService(db *gorm.DB) *CourseService {
	return &CourseService{db: db}
}

// Create registers a course offering with a fresh identifier.
func (s *CourseService) Create(courseCode, semester string) (*models.Course, error) {
	course := models.Course{
		CourseID:   uuid.New().String(),
		CourseCode: courseCode,
		Semester:   semester,
	}
	if err := s.db.Create(&course).Error; err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}
	return &course, nil
}

// Get returns a course by its identifier.
func (s *CourseService) Get(courseID string) (*models.Course, error) {
	var course models.Course
	if err := s.db.Where("course_id = ?", courseID).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("load course: %w", err)
	}
	return &course, nil
}

// ListAll returns every course.
func (s *CourseService) ListAll() ([]models.Course, error) {
	var courses []models.Course
	if err := s.db.Find(&courses).Error; err != nil {
		return nil, fmt.Errorf("load courses: %w", err)
	}
	return courses, nil
}

// GetMany returns the courses matching the given identifiers.
func (s *CourseService) GetMany(courseIDs []string) ([]models.Course, error) {
	if len(courseIDs) == 0 {
		return []models.Course{}, nil
	}
	var courses []models.Course
	if err := s.db.Where("course_id IN ?", courseIDs).Find(&courses).Error; err != nil {
		return nil, fmt.Errorf("load courses: %w", err)
	}
	return courses, nil
}
