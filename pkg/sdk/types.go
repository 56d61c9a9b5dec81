package sdk

import "encoding/json"

// Profile is the subset of the server's user record the client reads. The
// full payload is server-owned; unknown fields are preserved by keeping the
// raw JSON alongside wherever fidelity matters.
type Profile struct {
	ID           string `json:"_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	ClassTeacher string `json:"classTeacher"`
	Section      string `json:"section"`
}

// DecodeProfile extracts the known fields from a raw user payload.
func DecodeProfile(raw json.RawMessage) (*Profile, error) {
	var p Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Student is a roster entry from the students listing.
type Student struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Class     string `json:"class"`
	Section   string `json:"section"`
	RollNo    string `json:"rollNo"`
	Status    string `json:"status"`
	Gender    string `json:"gender"`
	Phone     string `json:"phone"`
	GuardianN string `json:"guardianName"`
}

// TodayStatus is the teacher's own clock-in/out state for the current day.
type TodayStatus struct {
	Success      bool   `json:"success"`
	ClockedIn    bool   `json:"clockedIn"`
	ClockInTime  string `json:"clockInTime"`
	ClockOutTime string `json:"clockOutTime"`
	Status       string `json:"status"`
	Message      string `json:"message"`
}

// ClockPayload carries the geolocation reading attached to clock-in/out.
type ClockPayload struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy"`
}

// ClockResult is the server's response to a clock-in/out attempt. Geofencing
// enforcement happens server-side; the client only relays the outcome.
type ClockResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Time    string `json:"time"`
}

// ActivityEntry is one row of the teacher's attendance activity log.
type ActivityEntry struct {
	Date         string `json:"date"`
	Status       string `json:"status"`
	ClockInTime  string `json:"clockInTime"`
	ClockOutTime string `json:"clockOutTime"`
	WorkingHours string `json:"workingHours"`
}

// RosterEntry is a single student's mark in a roster attendance submission.
type RosterEntry struct {
	StudentID string `json:"studentId"`
	Status    string `json:"status"` // present, absent, late, leave
}

// RosterSubmission is a full class attendance submission for one day.
type RosterSubmission struct {
	Date      string        `json:"date"` // YYYY-MM-DD
	ClassName string        `json:"className"`
	Section   string        `json:"section"`
	Entries   []RosterEntry `json:"attendance"`
}

// RosterDay is one day of recorded roster attendance.
type RosterDay struct {
	Date    string        `json:"date"`
	Entries []RosterEntry `json:"attendance"`
}

// ExamSubject is one subject scheduled inside an exam.
type ExamSubject struct {
	Name         string `json:"name"`
	Date         string `json:"date"`
	TotalMarks   int    `json:"totalMarks"`
	PassingMarks int    `json:"passingMarks"`
}

// Exam is an examination covering one or more subjects for a class/section.
type Exam struct {
	ID        string        `json:"_id"`
	Name      string        `json:"name"`
	ClassName string        `json:"className"`
	Section   string        `json:"section"`
	StartDate string        `json:"startDate"`
	EndDate   string        `json:"endDate"`
	Subjects  []ExamSubject `json:"subjects"`
}

// MarkRecord is one student's marks entry for an exam subject.
type MarkRecord struct {
	ID          string `json:"_id"`
	StudentName string `json:"studentName"`
	ExamName    string `json:"examName"`
	Subject     string `json:"subject"`
	Obtained    int    `json:"obtainedMarks"`
	Total       int    `json:"totalMarks"`
	Grade       string `json:"grade"`
}

// Assignment is a homework assignment, optionally with an attached file.
type Assignment struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
	ClassName   string `json:"className"`
	Section     string `json:"section"`
	Subject     string `json:"subject"`
	FileURL     string `json:"image"`
	CreatedAt   string `json:"createdAt"`
}

// Subject is a taught subject for a class/section.
type Subject struct {
	Name string `json:"name"`
}
