package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/quickta/backend/internal/services"
	"github.com/quickta/backend/pkg/response"
)

type ReportHandler struct {
	reports *services.ReportService
}

func NewReportHandler(reports *services.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Get returns the most recent report for a conversation.
func (h *ReportHandler) Get(c *gin.Context) {
	conversationID := c.Query("conversation_id")
	if conversationID == "" {
		response.BadRequest(c, "conversation_id is required")
		return
	}

	report, err := h.reports.Get(conversationID)
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, report)
}

type createReportRequest struct {
	ConversationID string `json:"conversation_id" binding:"required"`
	ReportMsg      string `json:"report_msg" binding:"required"`
}

// Create files a report about a conversation.
func (h *ReportHandler) Create(c *gin.Context) {
	var req createReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	report, err := h.reports.Create(req.ConversationID, req.ReportMsg)
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Created(c, report)
}

// ListAll returns every report.
func (h *ReportHandler) ListAll(c *gin.Context) {
	reports, err := h.reports.ListAll()
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, reports)
}
