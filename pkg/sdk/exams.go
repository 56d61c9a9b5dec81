package sdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListExams returns the exams scheduled for a class/section.
func (c *Client) ListExams(ctx context.Context, className, section string) ([]Exam, error) {
	query := url.Values{}
	query.Set("className", className)
	query.Set("section", section)

	var resp struct {
		Success bool   `json:"success"`
		Exams   []Exam `json:"exams"`
	}
	if err := c.do(ctx, http.MethodGet, "/exam/exams", query, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Exams, nil
}

// CreateExamInput is a new exam definition.
type CreateExamInput struct {
	Name      string        `json:"name" validate:"required"`
	ClassName string        `json:"className" validate:"required"`
	Section   string        `json:"section" validate:"required"`
	StartDate string        `json:"startDate" validate:"required"`
	EndDate   string        `json:"endDate" validate:"required"`
	Subjects  []ExamSubject `json:"subjects" validate:"required,min=1,dive"`
}

// CreateExam schedules a new exam.
func (c *Client) CreateExam(ctx context.Context, input CreateExamInput) (*Exam, error) {
	if err := c.validate.Struct(input); err != nil {
		return nil, err
	}

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Exam    Exam   `json:"exam"`
	}
	if err := c.do(ctx, http.MethodPost, "/exam/exams", nil, input, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("create exam rejected: %s", resp.Message)
	}
	return &resp.Exam, nil
}

// UpdateExam replaces an exam definition. The server treats the update as a
// full replacement, so the input carries the same fields as creation.
func (c *Client) UpdateExam(ctx context.Context, examID string, input CreateExamInput) (*Exam, error) {
	if examID == "" {
		return nil, fmt.Errorf("exam ID is required")
	}
	if err := c.validate.Struct(input); err != nil {
		return nil, err
	}

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Exam    Exam   `json:"exam"`
	}
	if err := c.do(ctx, http.MethodPut, "/exam/exams/"+examID, nil, input, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("update exam rejected: %s", resp.Message)
	}
	return &resp.Exam, nil
}

// DeleteExam removes an exam by ID.
func (c *Client) DeleteExam(ctx context.Context, examID string) error {
	if examID == "" {
		return fmt.Errorf("exam ID is required")
	}
	return c.do(ctx, http.MethodDelete, "/exam/exams/"+examID, nil, nil, nil)
}

// ListMarks returns recorded marks for a class/section.
func (c *Client) ListMarks(ctx context.Context, className, section string) ([]MarkRecord, error) {
	query := url.Values{}
	query.Set("className", className)
	query.Set("section", section)

	var resp struct {
		Success bool         `json:"success"`
		Marks   []MarkRecord `json:"marks"`
	}
	if err := c.do(ctx, http.MethodGet, "/marks/marksmarks", query, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Marks, nil
}
