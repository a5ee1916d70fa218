package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/quickta/backend/internal/services"
	"github.com/quickta/backend/pkg/response"
)

type UserHandler struct {
	users   *services.UserService
	courses *services.CourseService
	roster  *services.RosterService
}

func NewUserHandler(users *services.UserService, courses *services.CourseService, roster *services.RosterService) *UserHandler {
	return &UserHandler{users: users, courses: courses, roster: roster}
}

// Get returns a user by user_id.
func (h *UserHandler) Get(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		response.BadRequest(c, "user_id is required")
		return
	}

	user, err := h.users.Get(userID)
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, user)
}

// Create registers a single user.
func (h *UserHandler) Create(c *gin.Context) {
	var req services.NewUser
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.users.Create(&req)
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Created(c, user)
}

// ListAll returns every user.
func (h *UserHandler) ListAll(c *gin.Context) {
	users, err := h.users.ListAll()
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, users)
}

type batchAddRequest struct {
	Users []services.NewUser `json:"users" binding:"required,dive"`
}

// BatchAdd registers multiple users at once.
func (h *UserHandler) BatchAdd(c *gin.Context) {
	var req batchAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	users, err := h.users.BatchAdd(req.Users)
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Created(c, users)
}

// Courses returns the courses a user is authorized for.
func (h *UserHandler) Courses(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		response.BadRequest(c, "user_id is required")
		return
	}

	courseIDs, ok := h.roster.CoursesOf(c.Request.Context(), userID)
	if ok == services.OperationFailed {
		response.NotFound(c, "user not found")
		return
	}

	courses, err := h.courses.GetMany(courseIDs)
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, courses)
}
