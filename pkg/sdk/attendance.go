package sdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// AttendanceStatus returns the caller's clock-in/out state for today.
func (c *Client) AttendanceStatus(ctx context.Context) (*TodayStatus, error) {
	var resp TodayStatus
	if err := c.do(ctx, http.MethodGet, "/attendance/status/today", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ClockIn records the start of the working day with the supplied location.
// Whether the position is inside the school geofence is decided server-side.
func (c *Client) ClockIn(ctx context.Context, payload ClockPayload) (*ClockResult, error) {
	var resp ClockResult
	if err := c.do(ctx, http.MethodPost, "/attendance/clock-in", nil, payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ClockOut records the end of the working day with the supplied location.
func (c *Client) ClockOut(ctx context.Context, payload ClockPayload) (*ClockResult, error) {
	var resp ClockResult
	if err := c.do(ctx, http.MethodPost, "/attendance/clock-out", nil, payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AttendanceActivity lists the caller's attendance log for a date
// (YYYY-MM-DD). status filters by attendance status when non-empty.
func (c *Client) AttendanceActivity(ctx context.Context, date, status string) ([]ActivityEntry, error) {
	query := url.Values{}
	query.Set("date", date)
	if status != "" {
		query.Set("status", status)
	}

	var resp struct {
		Success  bool            `json:"success"`
		Activity []ActivityEntry `json:"activity"`
	}
	if err := c.do(ctx, http.MethodGet, "/attendance/activity", query, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Activity, nil
}

// SubmitRosterAttendance submits one day of class attendance marks.
func (c *Client) SubmitRosterAttendance(ctx context.Context, submission RosterSubmission) error {
	return c.do(ctx, http.MethodPost, "/teacher/createAttendance", nil, submission, nil)
}

// RosterAttendance returns recorded class attendance for a month.
func (c *Client) RosterAttendance(ctx context.Context, year, month int) ([]RosterDay, error) {
	query := url.Values{}
	query.Set("year", strconv.Itoa(year))
	query.Set("month", strconv.Itoa(month))

	var resp struct {
		Success    bool        `json:"success"`
		Attendance []RosterDay `json:"attendance"`
	}
	if err := c.do(ctx, http.MethodGet, "/teacher/getAttendance", query, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Attendance, nil
}
