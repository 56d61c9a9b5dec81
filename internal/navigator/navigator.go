// Package navigator selects which command tree is active for the current
// session state. It is a pure function of a session snapshot: bootstrapping
// shows a loading indicator, no token mounts the public tree, a token mounts
// the tree for the granted role, and an unrecognized role falls back to a
// placeholder tree rather than failing.
package navigator

import (
	"github.com/spf13/cobra"

	"github.com/dvsdigi/dvsapp/internal/cmd/assignment"
	"github.com/dvsdigi/dvsapp/internal/cmd/attendance"
	"github.com/dvsdigi/dvsapp/internal/cmd/auth"
	"github.com/dvsdigi/dvsapp/internal/cmd/dashboard"
	"github.com/dvsdigi/dvsapp/internal/cmd/exam"
	"github.com/dvsdigi/dvsapp/internal/cmd/mark"
	"github.com/dvsdigi/dvsapp/internal/cmd/student"
	"github.com/dvsdigi/dvsapp/internal/cmd/timetable"
	"github.com/dvsdigi/dvsapp/internal/session"
	"github.com/dvsdigi/dvsapp/pkg/sdk"
)

// Tree is one navigation tree: a named set of commands mounted on the root.
type Tree struct {
	Name     string
	Loading  bool
	Commands func() []*cobra.Command
}

var loadingTree = &Tree{
	Name:     "loading",
	Loading:  true,
	Commands: func() []*cobra.Command { return nil },
}

// publicTree hosts the unauthenticated flow: role selection, credential
// entry and submit all live under login.
var publicTree = &Tree{
	Name: "public",
	Commands: func() []*cobra.Command {
		return []*cobra.Command{auth.LoginCmd, auth.StatusCmd}
	},
}

func authedBase() []*cobra.Command {
	return []*cobra.Command{dashboard.DashboardCmd, auth.StatusCmd, auth.LogoutCmd}
}

// roleTrees maps every known role to its tree. The teacher experience is
// fully built out; the remaining roles get a dashboard shell until their
// feature sets land, mirroring the original client.
var roleTrees = map[sdk.Role]*Tree{
	sdk.RoleAdmin: {
		Name: "admin",
		Commands: func() []*cobra.Command {
			return append(authedBase(), student.StudentCmd, exam.ExamCmd, mark.MarkCmd)
		},
	},
	sdk.RoleTeacher: {
		Name: "teacher",
		Commands: func() []*cobra.Command {
			return append(authedBase(),
				attendance.AttendanceCmd,
				assignment.AssignmentCmd,
				exam.ExamCmd,
				student.StudentCmd,
				timetable.TimetableCmd,
				mark.MarkCmd,
			)
		},
	},
	sdk.RoleStudent: {
		Name: "student",
		Commands: func() []*cobra.Command {
			return append(authedBase(), timetable.TimetableCmd, mark.MarkCmd)
		},
	},
	sdk.RoleParent: {
		Name: "parent",
		Commands: func() []*cobra.Command {
			return append(authedBase(), timetable.TimetableCmd, mark.MarkCmd)
		},
	},
	sdk.RoleAccountant: {
		Name:     "accountant",
		Commands: authedBase,
	},
	sdk.RoleReceptionist: {
		Name:     "receptionist",
		Commands: authedBase,
	},
	sdk.RoleThirdParty: {
		Name:     "thirdparty",
		Commands: authedBase,
	},
}

// fallbackTree mounts for authenticated sessions whose role string the
// client does not recognize.
var fallbackTree = &Tree{
	Name:     "fallback",
	Commands: authedBase,
}

// Resolve picks the active tree for a session snapshot.
func Resolve(snap session.Snapshot) *Tree {
	if snap.Loading {
		return loadingTree
	}
	if !snap.Authenticated() {
		return publicTree
	}
	role, ok := sdk.ParseRole(snap.Role)
	if !ok {
		return fallbackTree
	}
	if tree, ok := roleTrees[role]; ok {
		return tree
	}
	return fallbackTree
}
