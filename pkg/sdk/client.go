package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tekelala/jtbd-interview-agent/pkg/interview"
)

// Client wraps calls to the interview API backend
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 180 * time.Second},
	}
}

// StartInterview creates a new interview session
func (c *Client) StartInterview(ctx context.Context, req *StartInterviewRequest) (*SessionResponse, error) {
	var out ApiResponse[SessionResponse]
	if err := c.doJSON(ctx, http.MethodPost, "/api/interviews", req, &out); err != nil {
		return nil, err
	}

	if out.Data.SessionID == "" {
		return nil, fmt.Errorf("no session id returned")
	}
	return &out.Data, nil
}

// PostMessage sends an interviewee answer and returns the model's reply
func (c *Client) PostMessage(ctx context.Context, sessionID, content string) (*MessageResponse, error) {
	path := fmt.Sprintf("/api/interviews/%s/message", sessionID)

	var out ApiResponse[MessageResponse]
	if err := c.doJSON(ctx, http.MethodPost, path, &PostMessageRequest{Content: content}, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// SetPhase moves a session to a new interview phase
func (c *Client) SetPhase(ctx context.Context, sessionID, phase string) (*SessionResponse, error) {
	path := fmt.Sprintf("/api/interviews/%s/phase", sessionID)

	var out ApiResponse[SessionResponse]
	if err := c.doJSON(ctx, http.MethodPut, path, &SetPhaseRequest{Phase: phase}, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// GetData returns the session's current structured data
func (c *Client) GetData(ctx context.Context, sessionID string) (*DataResponse, error) {
	path := fmt.Sprintf("/api/interviews/%s/data", sessionID)

	var out ApiResponse[DataResponse]
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// EndInterview finalizes a session and returns the summary
func (c *Client) EndInterview(ctx context.Context, sessionID string) (*EndInterviewResponse, error) {
	path := fmt.Sprintf("/api/interviews/%s/end", sessionID)

	var out ApiResponse[EndInterviewResponse]
	if err := c.doJSON(ctx, http.MethodPost, path, nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// ListInterviews returns the stored interview list
func (c *Client) ListInterviews(ctx context.Context) ([]*interview.InterviewListItem, error) {
	var out ApiResponse[[]*interview.InterviewListItem]
	if err := c.doJSON(ctx, http.MethodGet, "/api/interviews", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// GetInterview returns one stored interview by ID
func (c *Client) GetInterview(ctx context.Context, id string) (*interview.StoredInterview, error) {
	var out ApiResponse[interview.StoredInterview]
	if err := c.doJSON(ctx, http.MethodGet, "/api/interviews/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// DeleteInterview removes one stored interview by ID
func (c *Client) DeleteInterview(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/interviews/"+id, nil, nil)
}

// GetReport returns the rendered markdown report for a stored interview
func (c *Client) GetReport(ctx context.Context, id string) (string, error) {
	path := fmt.Sprintf("/api/interviews/%s/report", id)

	var out ApiResponse[ReportResponse]
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return "", err
	}
	return out.Data.Markdown, nil
}

// GetModels lists the selectable models
func (c *Client) GetModels(ctx context.Context) (*ModelsResponse, error) {
	var out ApiResponse[ModelsResponse]
	if err := c.doJSON(ctx, http.MethodGet, "/api/models", nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// doJSON is a helper to perform JSON requests to the backend
func (c *Client) doJSON(ctx context.Context, method, path string, in any, out any) error {
	// Create request body if input is provided
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewBuffer(b)
	}

	// Create the request
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-KEY", c.apiKey)
	}

	// Perform the request
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// On error, read body and return error
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("[BACKEND]: backend '%s %s' failed: %d: %s", method, path, resp.StatusCode, string(b))
	}

	// If no output expected, return early
	if out == nil {
		return nil
	}

	// Decode the response body into the output struct
	dec := json.NewDecoder(resp.Body)
	return dec.Decode(out)
}
