package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/quickta/backend/internal/services"
	"github.com/quickta/backend/pkg/response"
)

type CourseHandler struct {
	courses *services.CourseService
	roster  *services.RosterService
}

func NewCourseHandler(courses *services.CourseService, roster *services.RosterService) *CourseHandler {
	return &CourseHandler{courses: courses, roster: roster}
}

// Get returns a course by course_id.
func (h *CourseHandler) Get(c *gin.Context) {
	courseID := c.Query("course_id")
	if courseID == "" {
		response.BadRequest(c, "course_id is required")
		return
	}

	course, err := h.courses.Get(courseID)
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, course)
}

type createCourseRequest struct {
	CourseCode string `json:"course_code" binding:"required"`
	Semester   string `json:"semester" binding:"required"`
}

// Create registers a new course offering.
func (h *CourseHandler) Create(c *gin.Context) {
	var req createCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	course, err := h.courses.Create(req.CourseCode, req.Semester)
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Created(c, course)
}

// ListAll returns every course.
func (h *CourseHandler) ListAll(c *gin.Context) {
	courses, err := h.courses.ListAll()
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, courses)
}

type rosterMutationRequest struct {
	CourseID string `json:"course_id" binding:"required"`
	UserID   string `json:"user_id" binding:"required"`
}

// RosterAdd authorizes a user for a course. The outcome is reported as a
// success flag the caller has to check.
func (h *CourseHandler) RosterAdd(c *gin.Context) {
	var req rosterMutationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ok := h.roster.Add(c.Request.Context(), req.CourseID, req.UserID)
	response.Success(c, gin.H{"success": bool(ok)})
}

// RosterRemove revokes a user's access to a course.
func (h *CourseHandler) RosterRemove(c *gin.Context) {
	var req rosterMutationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ok := h.roster.Remove(c.Request.Context(), req.CourseID, req.UserID)
	response.Success(c, gin.H{"success": bool(ok)})
}

// RosterList returns the users authorized for a course.
func (h *CourseHandler) RosterList(c *gin.Context) {
	courseID := c.Query("course_id")
	if courseID == "" {
		response.BadRequest(c, "course_id is required")
		return
	}

	users, ok := h.roster.List(c.Request.Context(), courseID)
	response.Success(c, gin.H{"success": bool(ok), "users": users})
}
