// Package sdk defines the wire types of the interview API and a client for
// calling it from Go programs.
package sdk

import (
	"encoding/json"
	"time"

	"github.com/tekelala/jtbd-interview-agent/pkg/interview"
	"github.com/tekelala/jtbd-interview-agent/pkg/provider"
)

// StatusType marks an API response as successful or failed
type StatusType string

const (
	StatusSuccess StatusType = "success"
	StatusError   StatusType = "error"
)

// ApiResponse represents a standard API response structure
type ApiResponse[T any] struct {
	Status  StatusType `json:"status"`          // Status message
	Code    int        `json:"code"`            // Status code
	Message string     `json:"message"`         // Human-readable message
	Data    T          `json:"data,omitempty"`  // Optional data field for successful responses
	Error   any        `json:"error,omitempty"` // Optional errors field for error responses
}

// AsGinResponse converts the ApiResponse to a format suitable for Gin framework
func (r ApiResponse[T]) AsGinResponse() (int, any) {
	return r.Code, r
}

// AsJSON converts the ApiResponse to a format suitable for JSON responses
func (r ApiResponse[T]) AsJSON() (string, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func NewSuccessResponse[T any](message string, data T) ApiResponse[T] {
	return ApiResponse[T]{
		Status:  StatusSuccess,
		Code:    200,
		Message: message,
		Data:    data,
	}
}

func NewErrorResponse(code int, message string, err any) ApiResponse[any] {
	resp := ApiResponse[any]{
		Status:  StatusError,
		Code:    code,
		Message: message,
	}

	// Error values don't marshal as their message; unwrap to a string
	if e, ok := err.(error); ok {
		resp.Error = e.Error()
	} else {
		resp.Error = err
	}

	return resp
}

/** Requests */

// StartInterviewRequest represents the request body for starting an interview
type StartInterviewRequest struct {
	ProductContext  string `json:"product_context"`
	IntervieweeName string `json:"interviewee_name"`
	Model           string `json:"model"`
	Provider        string `json:"provider"`
}

// PostMessageRequest represents the request body for sending an interviewee
// answer to a live session
type PostMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// SetPhaseRequest represents the request body for moving a session to a new
// interview phase
type SetPhaseRequest struct {
	Phase string `json:"phase" binding:"required"`
}

/** Responses */

// SessionResponse describes a live interview session
type SessionResponse struct {
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
	Phase     string    `json:"phase"`
	Model     string    `json:"model"`

	// Greeting is the model's opening message, set when the session starts
	Greeting string `json:"greeting,omitempty"`
}

// MessageResponse is the model's reply to one interviewee answer
type MessageResponse struct {
	SessionID string `json:"session_id"`
	Response  string `json:"response"`
	Phase     string `json:"phase"`
}

// EndInterviewResponse carries the final summary and the ID the interview
// was stored under
type EndInterviewResponse struct {
	InterviewID string             `json:"interview_id"`
	Summary     *interview.Summary `json:"summary"`
}

// DataResponse is the current structured data of a live session
type DataResponse struct {
	SessionID string                   `json:"session_id"`
	Phase     string                   `json:"phase"`
	Data      *interview.InterviewData `json:"data"`
}

// ModelsResponse lists the models selectable when starting an interview
type ModelsResponse struct {
	Models  []provider.ModelInfo `json:"models"`
	Default string               `json:"default"`
}

// ReportResponse carries a rendered markdown report
type ReportResponse struct {
	InterviewID string `json:"interview_id"`
	Markdown    string `json:"markdown"`
}
