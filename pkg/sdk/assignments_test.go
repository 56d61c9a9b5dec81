package sdk

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAssignmentMultipartUpload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/assignment/assignments", r.URL.Path)
		assert.Equal(t, "Bearer upload-token", r.Header.Get("Authorization"))
		assert.Contains(t, r.Header.Get("Content-Type"), "multipart/form-data")

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Fractions worksheet", r.FormValue("title"))
		assert.Equal(t, "Complete exercises 1-10", r.FormValue("description"))
		assert.Equal(t, "2026-09-04", r.FormValue("dueDate"))
		assert.Equal(t, "5", r.FormValue("className"))
		assert.Equal(t, "A", r.FormValue("section"))
		assert.Equal(t, "Mathematics", r.FormValue("subject"))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "worksheet.pdf", header.Filename)
		assert.Equal(t, "application/pdf", header.Header.Get("Content-Type"))
		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "%PDF-fake", string(data))

		json.NewEncoder(w).Encode(map[string]any{
			"success":    true,
			"assignment": map[string]any{"_id": "a1", "title": "Fractions worksheet"},
		})
	}))
	defer server.Close()

	store := &stubStore{creds: &Credentials{Token: "upload-token"}}
	client := NewClient(server.URL, WithCredentialStore(store))

	created, err := client.CreateAssignment(context.Background(), CreateAssignmentInput{
		Title:          "Fractions worksheet",
		Description:    "Complete exercises 1-10",
		DueDate:        "2026-09-04",
		ClassName:      "5",
		Section:        "A",
		Subject:        "Mathematics",
		AttachmentName: "worksheet.pdf",
		AttachmentMIME: "application/pdf",
		Attachment:     strings.NewReader("%PDF-fake"),
	})
	require.NoError(t, err)
	assert.Equal(t, "a1", created.ID)
}

func TestCreateAssignmentWithoutAttachment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, _, err := r.FormFile("image")
		assert.Error(t, err, "no file part expected")
		json.NewEncoder(w).Encode(map[string]any{
			"success":    true,
			"assignment": map[string]any{"_id": "a2"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	created, err := client.CreateAssignment(context.Background(), CreateAssignmentInput{
		Title:       "Reading",
		Description: "Chapter 3",
		DueDate:     "2026-09-04",
		ClassName:   "5",
		Section:     "A",
		Subject:     "English",
	})
	require.NoError(t, err)
	assert.Equal(t, "a2", created.ID)
}

func TestCreateAssignmentValidatesInput(t *testing.T) {
	client := NewClient("http://unreachable.invalid")
	_, err := client.CreateAssignment(context.Background(), CreateAssignmentInput{
		Title: "missing everything else",
	})
	require.Error(t, err)
}

func TestCreateAssignmentServerRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "duplicate title"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.CreateAssignment(context.Background(), CreateAssignmentInput{
		Title:       "Reading",
		Description: "Chapter 3",
		DueDate:     "2026-09-04",
		ClassName:   "5",
		Section:     "A",
		Subject:     "English",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate title")
}

func TestListAssignmentsReadsAllAssignmentField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"allAssignment": []map[string]any{
				{"_id": "a1", "title": "first", "image": "https://cdn.test/a1.pdf"},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	assignments, err := client.ListAssignments(context.Background())
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	assert.Equal(t, "https://cdn.test/a1.pdf", assignments[0].FileURL)
}
