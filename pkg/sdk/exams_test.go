package sdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func examInput() CreateExamInput {
	return CreateExamInput{
		Name:      "Half Yearly",
		ClassName: "5",
		Section:   "A",
		StartDate: "2026-09-10",
		EndDate:   "2026-09-14",
		Subjects: []ExamSubject{
			{Name: "Mathematics", Date: "2026-09-10", TotalMarks: 100, PassingMarks: 33},
		},
	}
}

func TestUpdateExam(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path

		var input CreateExamInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
		assert.Equal(t, "Half Yearly", input.Name)
		require.Len(t, input.Subjects, 1)

		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"exam":    map[string]any{"_id": "e1", "name": input.Name},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	exam, err := client.UpdateExam(context.Background(), "e1", examInput())
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/v1/exam/exams/e1", gotPath)
	assert.Equal(t, "e1", exam.ID)
}

func TestUpdateExamRequiresID(t *testing.T) {
	client := NewClient("http://unreachable.invalid")
	_, err := client.UpdateExam(context.Background(), "", examInput())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exam ID is required")
}

func TestUpdateExamServerRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "exam not found"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.UpdateExam(context.Background(), "missing", examInput())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exam not found")
}

func TestUpdateExamValidatesInput(t *testing.T) {
	client := NewClient("http://unreachable.invalid")
	_, err := client.UpdateExam(context.Background(), "e1", CreateExamInput{Name: "incomplete"})
	require.Error(t, err)
}
