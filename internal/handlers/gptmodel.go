package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/quickta/backend/internal/services"
	"github.com/quickta/backend/pkg/response"
)

type GPTModelHandler struct {
	profiles *services.GPTModelService
}

func NewGPTModelHandler(profiles *services.GPTModelService) *GPTModelHandler {
	return &GPTModelHandler{profiles: profiles}
}

// Create registers a new model profile for a course.
func (h *GPTModelHandler) Create(c *gin.Context) {
	var req services.CreateGPTModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	profile, err := h.profiles.Create(&req)
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Created(c, profile)
}

// GetActive returns the active model profile of a course.
func (h *GPTModelHandler) GetActive(c *gin.Context) {
	courseID := c.Query("course_id")
	if courseID == "" {
		response.BadRequest(c, "course_id is required")
		return
	}

	profile, err := h.profiles.GetActive(courseID)
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, profile)
}

// List returns every model profile of a course.
func (h *GPTModelHandler) List(c *gin.Context) {
	courseID := c.Query("course_id")
	if courseID == "" {
		response.BadRequest(c, "course_id is required")
		return
	}

	profiles, err := h.profiles.List(courseID)
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, profiles)
}

type activateModelRequest struct {
	ModelID string `json:"model_id" binding:"required"`
}

// Activate switches the course's active model profile.
func (h *GPTModelHandler) Activate(c *gin.Context) {
	var req activateModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	profile, err := h.profiles.Activate(req.ModelID)
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, profile)
}
