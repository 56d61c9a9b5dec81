package sdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListStudents returns the active students of a class/section. The server
// nests the roster under students.data.
func (c *Client) ListStudents(ctx context.Context, class, section string) ([]Student, error) {
	query := url.Values{}
	query.Set("class", class)
	query.Set("section", section)
	query.Set("status", "active")

	var resp struct {
		Success  bool `json:"success"`
		Students struct {
			Data []Student `json:"data"`
		} `json:"students"`
	}
	if err := c.do(ctx, http.MethodGet, "/adminRoute/studentparent", query, nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return []Student{}, nil
	}
	return resp.Students.Data, nil
}

// UpdateStudent updates a student profile. Fields is server-owned; only keys
// present in the map are modified.
func (c *Client) UpdateStudent(ctx context.Context, studentID string, fields map[string]any) error {
	if studentID == "" {
		return fmt.Errorf("student ID is required")
	}
	return c.do(ctx, http.MethodPut, "/adminRoute/students/"+studentID, nil, fields, nil)
}
