package sdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// TimetablePeriods is the number of period slots per day.
const TimetablePeriods = 8

// TimetableDays is the fixed day order of a timetable record (the server
// stores no Sunday column).
var TimetableDays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// DayPeriods maps period slots ("period1".."period8") to subject names. An
// absent or empty slot is a free period.
type DayPeriods map[string]string

// TimetableRecord is the stored weekly timetable for one class/section. The
// server keeps at most one record per class/section.
type TimetableRecord struct {
	ID        string     `json:"_id"`
	ClassName string     `json:"className"`
	Section   string     `json:"section"`
	Monday    DayPeriods `json:"monday"`
	Tuesday   DayPeriods `json:"tuesday"`
	Wednesday DayPeriods `json:"wednesday"`
	Thursday  DayPeriods `json:"thursday"`
	Friday    DayPeriods `json:"friday"`
	Saturday  DayPeriods `json:"saturday"`
}

// Day returns the periods for a lowercase day name, nil for unknown days.
func (r *TimetableRecord) Day(name string) DayPeriods {
	switch name {
	case "monday":
		return r.Monday
	case "tuesday":
		return r.Tuesday
	case "wednesday":
		return r.Wednesday
	case "thursday":
		return r.Thursday
	case "friday":
		return r.Friday
	case "saturday":
		return r.Saturday
	}
	return nil
}

// AsInput copies the record's schedule into a create input, the shape used to
// resubmit it after editing.
func (r *TimetableRecord) AsInput() CreateTimetableInput {
	copyDay := func(day DayPeriods) DayPeriods {
		out := DayPeriods{}
		for slot, subject := range day {
			out[slot] = subject
		}
		return out
	}
	return CreateTimetableInput{
		ClassName: r.ClassName,
		Section:   r.Section,
		Monday:    copyDay(r.Monday),
		Tuesday:   copyDay(r.Tuesday),
		Wednesday: copyDay(r.Wednesday),
		Thursday:  copyDay(r.Thursday),
		Friday:    copyDay(r.Friday),
		Saturday:  copyDay(r.Saturday),
	}
}

// CreateTimetableInput is a full timetable for one class/section.
type CreateTimetableInput struct {
	ClassName string     `json:"className" validate:"required"`
	Section   string     `json:"section" validate:"required"`
	Monday    DayPeriods `json:"monday,omitempty"`
	Tuesday   DayPeriods `json:"tuesday,omitempty"`
	Wednesday DayPeriods `json:"wednesday,omitempty"`
	Thursday  DayPeriods `json:"thursday,omitempty"`
	Friday    DayPeriods `json:"friday,omitempty"`
	Saturday  DayPeriods `json:"saturday,omitempty"`
}

// SetPeriod assigns a subject to a day/period slot, allocating the day map
// when needed. An empty subject clears the slot back to a free period.
func (in *CreateTimetableInput) SetPeriod(day string, period int, subject string) error {
	if period < 1 || period > TimetablePeriods {
		return fmt.Errorf("period must be between 1 and %d", TimetablePeriods)
	}
	var target *DayPeriods
	switch day {
	case "monday":
		target = &in.Monday
	case "tuesday":
		target = &in.Tuesday
	case "wednesday":
		target = &in.Wednesday
	case "thursday":
		target = &in.Thursday
	case "friday":
		target = &in.Friday
	case "saturday":
		target = &in.Saturday
	default:
		return fmt.Errorf("unknown day %q", day)
	}
	if *target == nil {
		*target = DayPeriods{}
	}
	(*target)[fmt.Sprintf("period%d", period)] = subject
	return nil
}

// ClassTimetable returns the stored timetable for a class/section, (nil, nil)
// when none has been created yet.
func (c *Client) ClassTimetable(ctx context.Context, className, section string) (*TimetableRecord, error) {
	query := url.Values{}
	query.Set("className", className)
	query.Set("section", section)

	var resp struct {
		Success   bool              `json:"success"`
		TimeTable []TimetableRecord `json:"timeTable"`
	}
	if err := c.do(ctx, http.MethodGet, "/timeTable/classTimeTable", query, nil, &resp); err != nil {
		return nil, err
	}
	if len(resp.TimeTable) == 0 {
		return nil, nil
	}
	return &resp.TimeTable[0], nil
}

// CreateClassTimetable creates the timetable record for a class/section. The
// server rejects a second create for the same class, so edits go through
// ReplaceClassTimetable.
func (c *Client) CreateClassTimetable(ctx context.Context, input CreateTimetableInput) (*TimetableRecord, error) {
	if err := c.validate.Struct(input); err != nil {
		return nil, err
	}

	var resp struct {
		Success   bool            `json:"success"`
		Message   string          `json:"message"`
		TimeTable TimetableRecord `json:"timeTable"`
	}
	if err := c.do(ctx, http.MethodPost, "/timeTable/createClassTimeTable", nil, input, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("create timetable rejected: %s", resp.Message)
	}
	return &resp.TimeTable, nil
}

// DeleteClassTimetable removes a timetable record by ID.
func (c *Client) DeleteClassTimetable(ctx context.Context, timetableID string) error {
	if timetableID == "" {
		return fmt.Errorf("timetable ID is required")
	}
	return c.do(ctx, http.MethodDelete, "/timeTable/classTimeTable/"+timetableID, nil, nil, nil)
}

// ReplaceClassTimetable saves timetable edits. The server has no update
// endpoint and rejects duplicate creates, so an existing record is deleted
// first, then the new one created. existingID may be empty when no record
// exists yet.
func (c *Client) ReplaceClassTimetable(ctx context.Context, existingID string, input CreateTimetableInput) (*TimetableRecord, error) {
	if existingID != "" {
		if err := c.DeleteClassTimetable(ctx, existingID); err != nil {
			return nil, err
		}
	}
	return c.CreateClassTimetable(ctx, input)
}
