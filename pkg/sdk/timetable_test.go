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

func TestClassTimetable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/timeTable/classTimeTable", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("className"))
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"timeTable": []map[string]any{
				{
					"_id":    "tt1",
					"monday": map[string]string{"period1": "Mathematics", "period3": "English"},
				},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	record, err := client.ClassTimetable(context.Background(), "5", "A")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "tt1", record.ID)
	assert.Equal(t, "Mathematics", record.Monday["period1"])
	assert.Equal(t, "English", record.Day("monday")["period3"])
	assert.Empty(t, record.Day("tuesday")["period1"])
}

func TestClassTimetableMissingIsNil(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": true, "timeTable": []any{}})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	record, err := client.ClassTimetable(context.Background(), "5", "A")
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestReplaceClassTimetableDeletesThenCreates(t *testing.T) {
	var calls []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		switch r.Method {
		case http.MethodDelete:
			json.NewEncoder(w).Encode(map[string]any{"success": true})
		case http.MethodPost:
			var input CreateTimetableInput
			require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
			assert.Equal(t, "Science", input.Monday["period2"])
			json.NewEncoder(w).Encode(map[string]any{
				"success":   true,
				"timeTable": map[string]any{"_id": "tt2"},
			})
		}
	}))
	defer server.Close()

	client := NewClient(server.URL)
	input := CreateTimetableInput{ClassName: "5", Section: "A"}
	require.NoError(t, input.SetPeriod("monday", 2, "Science"))

	record, err := client.ReplaceClassTimetable(context.Background(), "tt1", input)
	require.NoError(t, err)
	assert.Equal(t, "tt2", record.ID)
	assert.Equal(t, []string{
		"DELETE /api/v1/timeTable/classTimeTable/tt1",
		"POST /api/v1/timeTable/createClassTimeTable",
	}, calls)
}

func TestReplaceClassTimetableWithoutExistingSkipsDelete(t *testing.T) {
	var calls []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method)
		json.NewEncoder(w).Encode(map[string]any{
			"success":   true,
			"timeTable": map[string]any{"_id": "tt1"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	input := CreateTimetableInput{ClassName: "5", Section: "A"}
	_, err := client.ReplaceClassTimetable(context.Background(), "", input)
	require.NoError(t, err)
	assert.Equal(t, []string{http.MethodPost}, calls)
}

func TestDeleteClassTimetableRequiresID(t *testing.T) {
	client := NewClient("http://unreachable.invalid")
	err := client.DeleteClassTimetable(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timetable ID is required")
}

func TestSetPeriod(t *testing.T) {
	input := CreateTimetableInput{ClassName: "5", Section: "A"}

	require.NoError(t, input.SetPeriod("wednesday", 4, "History"))
	assert.Equal(t, "History", input.Wednesday["period4"])

	require.NoError(t, input.SetPeriod("wednesday", 4, ""))
	assert.Empty(t, input.Wednesday["period4"])

	assert.Error(t, input.SetPeriod("sunday", 1, "Math"))
	assert.Error(t, input.SetPeriod("monday", 0, "Math"))
	assert.Error(t, input.SetPeriod("monday", 9, "Math"))
}

func TestTimetableRecordAsInputCopies(t *testing.T) {
	record := &TimetableRecord{
		ID:        "tt1",
		ClassName: "5",
		Section:   "A",
		Monday:    DayPeriods{"period1": "Mathematics"},
	}

	input := record.AsInput()
	require.NoError(t, input.SetPeriod("monday", 1, "English"))

	assert.Equal(t, "Mathematics", record.Monday["period1"], "editing the input must not mutate the record")
	assert.Equal(t, "English", input.Monday["period1"])
}
