package services

import (
	"errors"
	"testing"
)

func TestCourseCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	svc := NewCourseService(db)

	course, err := svc.Create("CSC108", "2024F")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if course.CourseID == "" {
		t.Error("CourseID is empty")
	}

	got, err := svc.Get(course.CourseID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.CourseCode != "CSC108" || got.Semester != "2024F" {
		t.Errorf("got %q %q, expected CSC108 2024F", got.CourseCode, got.Semester)
	}
}

func TestCourseGet_Missing(t *testing.T) {
	db := newTestDB(t)
	svc := NewCourseService(db)

	_, err := svc.Get("nonexistent-id")
	if !errors.Is(err, ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}

func TestCourseGetMany(t *testing.T) {
	db := newTestDB(t)
	svc := NewCourseService(db)

	first := seedCourse(t, db, "CSC108")
	seedCourse(t, db, "CSC148")
	third := seedCourse(t, db, "CSC207")

	courses, err := svc.GetMany([]string{first.CourseID, third.CourseID})
	if err != nil {
		t.Fatalf("GetMany returned error: %v", err)
	}
	if len(courses) != 2 {
		t.Fatalf("got %d courses, expected 2", len(courses))
	}
}

func TestCourseGetMany_Empty(t *testing.T) {
	db := newTestDB(t)
	svc := NewCourseService(db)

	courses, err := svc.GetMany(nil)
	if err != nil {
		t.Fatalf("GetMany returned error: %v", err)
	}
	if len(courses) != 0 {
		t.Errorf("got %d courses, expected none", len(courses))
	}
}
