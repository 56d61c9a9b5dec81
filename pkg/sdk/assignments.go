package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
)

// ListAssignments returns all assignments visible to the caller. The server
// returns them oldest first under allAssignment.
func (c *Client) ListAssignments(ctx context.Context) ([]Assignment, error) {
	var resp struct {
		Success       bool         `json:"success"`
		AllAssignment []Assignment `json:"allAssignment"`
	}
	if err := c.do(ctx, http.MethodGet, "/assignment/assignments", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.AllAssignment, nil
}

// DeleteAssignment removes an assignment by ID.
func (c *Client) DeleteAssignment(ctx context.Context, assignmentID string) error {
	if assignmentID == "" {
		return fmt.Errorf("assignment ID is required")
	}
	return c.do(ctx, http.MethodDelete, "/assignment/assignments/"+assignmentID, nil, nil, nil)
}

// ListSubjects returns the subjects taught for a class/section, used when
// creating assignments and exams.
func (c *Client) ListSubjects(ctx context.Context, className, section string) ([]Subject, error) {
	query := url.Values{}
	query.Set("className", className)
	query.Set("section", section)

	var resp struct {
		Success  bool      `json:"success"`
		Subjects []Subject `json:"subjects"`
	}
	if err := c.do(ctx, http.MethodGet, "/subjects", query, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Subjects, nil
}

// CreateAssignmentInput is a new assignment. Attachment is optional.
type CreateAssignmentInput struct {
	Title       string `validate:"required"`
	Description string `validate:"required"`
	DueDate     string `validate:"required"` // YYYY-MM-DD
	ClassName   string `validate:"required"`
	Section     string `validate:"required"`
	Subject     string `validate:"required"`

	// AttachmentName and Attachment describe the optional file part. The
	// server stores it under the assignment's image field.
	AttachmentName string
	AttachmentMIME string
	Attachment     io.Reader
}

// CreateAssignment creates an assignment with an optional file attachment.
//
// This endpoint deliberately bypasses the shared client: the request is built
// by hand as multipart form data, the bearer token is attached manually, and
// the Content-Type comes from the multipart writer so the boundary is owned
// by the encoder. This is a known special case, not a pattern to copy.
func (c *Client) CreateAssignment(ctx context.Context, input CreateAssignmentInput) (*Assignment, error) {
	if err := c.validate.Struct(input); err != nil {
		return nil, err
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	fields := map[string]string{
		"title":       input.Title,
		"description": input.Description,
		"dueDate":     input.DueDate,
		"className":   input.ClassName,
		"section":     input.Section,
		"subject":     input.Subject,
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("failed to write form field %s: %w", name, err)
		}
	}
	if input.Attachment != nil {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, input.AttachmentName))
		contentType := input.AttachmentMIME
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		header.Set("Content-Type", contentType)

		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, fmt.Errorf("failed to create file part: %w", err)
		}
		if _, err := io.Copy(part, input.Attachment); err != nil {
			return nil, fmt.Errorf("failed to read attachment: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	fullURL := c.url("/assignment/assignments", nil)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fullURL, &body)
	if err != nil {
		c.log.WithError(err).WithField("url", fullURL).Error("request construction failed")
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	if c.source != nil {
		token, err := c.source.Token()
		if err != nil {
			c.log.WithError(err).Warn("credential read failed, uploading unauthenticated")
		} else if token != nil && token.AccessToken != "" {
			token.SetAuthHeader(req)
		}
	}

	// Uploads may legitimately outlive the fixed request timeout, so the
	// context is the only deadline here.
	resp, err := (&http.Client{}).Do(req)
	if err != nil {
		c.log.WithError(err).WithField("url", fullURL).Error("network error")
		return nil, &TransportError{URL: fullURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.apiError(resp, fullURL)
	}

	var out struct {
		Success    bool       `json:"success"`
		Message    string     `json:"message"`
		Assignment Assignment `json:"assignment"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response from %s: %w", fullURL, err)
	}
	if !out.Success {
		return nil, fmt.Errorf("create assignment rejected: %s", out.Message)
	}
	return &out.Assignment, nil
}
