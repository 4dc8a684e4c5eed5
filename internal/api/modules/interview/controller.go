// Package interview exposes the interview engine over HTTP: live session
// management plus the stored-interview archive.
package interview

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tekelala/jtbd-interview-agent/internal/registry"
	"github.com/tekelala/jtbd-interview-agent/pkg/interview"
	"github.com/tekelala/jtbd-interview-agent/pkg/provider"
	"github.com/tekelala/jtbd-interview-agent/pkg/report"
	"github.com/tekelala/jtbd-interview-agent/pkg/sdk"
)

// StartInterview handles POST requests to create a new interview session
func StartInterview(c *gin.Context) {
	var req sdk.StartInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Could not parse request body", err).AsGinResponse())
		return
	}

	s := GetService()

	interviewer, err := s.NewInterviewer(req.Provider, req.Model)
	if err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Failed to create interview engine", err).AsGinResponse())
		return
	}

	config := interview.Config{
		ProductContext:  req.ProductContext,
		IntervieweeName: req.IntervieweeName,
	}

	greeting, err := interviewer.Start(c.Request.Context(), config)
	if err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusBadGateway, "Failed to start interview", err).AsGinResponse())
		return
	}

	session := s.Registry.Create(interviewer, config)

	resp := sdk.SessionResponse{
		SessionID: session.ID,
		CreatedAt: session.CreatedAt,
		Phase:     string(interviewer.Phase()),
		Model:     interviewer.Model(),
		Greeting:  greeting,
	}

	c.JSON(sdk.NewSuccessResponse("Interview started successfully", resp).AsGinResponse())
}

// PostMessage handles POST requests to send an interviewee answer to a
// live session
func PostMessage(c *gin.Context) {
	session, ok := findSession(c)
	if !ok {
		return
	}

	var req sdk.PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Could not parse request body", err).AsGinResponse())
		return
	}

	if strings.TrimSpace(req.Content) == "" {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Message content cannot be empty", nil).AsGinResponse())
		return
	}

	session.Mu.Lock()
	defer session.Mu.Unlock()

	response, err := session.Interviewer.SendMessage(c.Request.Context(), req.Content)
	if err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusBadGateway, "Failed to get interviewer response", err).AsGinResponse())
		return
	}
	session.Touch()

	resp := sdk.MessageResponse{
		SessionID: session.ID,
		Response:  response,
		Phase:     string(session.Interviewer.Phase()),
	}

	c.JSON(sdk.NewSuccessResponse("Message sent successfully", resp).AsGinResponse())
}

// SetPhase handles PUT requests to move a session to a new interview phase
func SetPhase(c *gin.Context) {
	session, ok := findSession(c)
	if !ok {
		return
	}

	var req sdk.SetPhaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Could not parse request body", err).AsGinResponse())
		return
	}

	phase := interview.Phase(req.Phase)
	if !interview.ValidPhase(phase) {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Unknown interview phase", nil).AsGinResponse())
		return
	}

	session.Mu.Lock()
	defer session.Mu.Unlock()

	session.Interviewer.SetPhase(phase)
	session.Touch()

	resp := sdk.SessionResponse{
		SessionID: session.ID,
		CreatedAt: session.CreatedAt,
		Phase:     string(phase),
		Model:     session.Interviewer.Model(),
	}

	c.JSON(sdk.NewSuccessResponse("Phase updated successfully", resp).AsGinResponse())
}

// GetData handles GET requests for a live session's structured data
func GetData(c *gin.Context) {
	session, ok := findSession(c)
	if !ok {
		return
	}

	session.Mu.Lock()
	defer session.Mu.Unlock()

	resp := sdk.DataResponse{
		SessionID: session.ID,
		Phase:     string(session.Interviewer.Phase()),
		Data:      session.Interviewer.GetInterviewData(),
	}

	c.JSON(sdk.NewSuccessResponse("Interview data retrieved successfully", resp).AsGinResponse())
}

// ExportData handles GET requests for a live session's raw JSON export
func ExportData(c *gin.Context) {
	session, ok := findSession(c)
	if !ok {
		return
	}

	session.Mu.Lock()
	defer session.Mu.Unlock()

	data, err := session.Interviewer.ExportToJSON()
	if err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusInternalServerError, "Failed to export interview data", err).AsGinResponse())
		return
	}

	c.Data(http.StatusOK, "application/json", []byte(data))
}

// EndInterview handles POST requests to finalize a session. The summary is
// returned and the interview is persisted under a new interview ID.
func EndInterview(c *gin.Context) {
	session, ok := findSession(c)
	if !ok {
		return
	}

	session.Mu.Lock()
	defer session.Mu.Unlock()

	interviewID, summary, err := GetService().Finalize(c.Request.Context(), session)
	if err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusBadGateway, "Failed to end interview", err).AsGinResponse())
		return
	}

	resp := sdk.EndInterviewResponse{
		InterviewID: interviewID,
		Summary:     summary,
	}

	c.JSON(sdk.NewSuccessResponse("Interview ended successfully", resp).AsGinResponse())
}

// ListInterviews handles GET requests for the stored interview list
func ListInterviews(c *gin.Context) {
	items, err := GetService().Store.List(c.Request.Context())
	if err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusInternalServerError, "Failed to list interviews", err).AsGinResponse())
		return
	}

	c.JSON(sdk.NewSuccessResponse("Interviews retrieved successfully", items).AsGinResponse())
}

// GetInterview handles GET requests for one stored interview
func GetInterview(c *gin.Context) {
	stored, ok := findStored(c)
	if !ok {
		return
	}

	c.JSON(sdk.NewSuccessResponse("Interview retrieved successfully", stored).AsGinResponse())
}

// DeleteInterview handles DELETE requests for one stored interview
func DeleteInterview(c *gin.Context) {
	id := c.Param("id")

	deleted, err := GetService().Store.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusInternalServerError, "Failed to delete interview", err).AsGinResponse())
		return
	}
	if !deleted {
		c.JSON(sdk.NewErrorResponse(http.StatusNotFound, "Interview not found", nil).AsGinResponse())
		return
	}

	c.JSON(sdk.NewSuccessResponse("Interview deleted successfully", id).AsGinResponse())
}

// GetReport handles GET requests for a stored interview's markdown report
func GetReport(c *gin.Context) {
	stored, ok := findStored(c)
	if !ok {
		return
	}

	resp := sdk.ReportResponse{
		InterviewID: stored.ID,
		Markdown:    report.Generate(stored),
	}

	c.JSON(sdk.NewSuccessResponse("Report generated successfully", resp).AsGinResponse())
}

// GetModels handles GET requests for the selectable model list
func GetModels(c *gin.Context) {
	resp := sdk.ModelsResponse{
		Models:  provider.Models,
		Default: provider.DefaultModel,
	}

	c.JSON(sdk.NewSuccessResponse("Models retrieved successfully", resp).AsGinResponse())
}

// findSession resolves the :id parameter to a live session, writing the
// error response on a miss
func findSession(c *gin.Context) (*registry.Session, bool) {
	session, exists := GetService().Registry.Get(c.Param("id"))
	if !exists {
		c.JSON(sdk.NewErrorResponse(http.StatusNotFound, "Session not found", nil).AsGinResponse())
		return nil, false
	}
	return session, true
}

// findStored resolves the :id parameter to a stored interview, writing the
// error response on a miss
func findStored(c *gin.Context) (*interview.StoredInterview, bool) {
	stored, err := GetService().Store.Load(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusInternalServerError, "Failed to load interview", err).AsGinResponse())
		return nil, false
	}
	if stored == nil {
		c.JSON(sdk.NewErrorResponse(http.StatusNotFound, "Interview not found", nil).AsGinResponse())
		return nil, false
	}
	return stored, true
}
