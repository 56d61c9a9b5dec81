// Package assignment covers assignment CRUD, including file-attached
// creation via the multipart upload path.
package assignment

import (
	"github.com/spf13/cobra"
)

// AssignmentCmd is the parent command for assignment operations.
var AssignmentCmd = &cobra.Command{
	Use:   "assignment",
	Short: "Manage assignments",
}

func init() {
	AssignmentCmd.AddCommand(listCmd)
	AssignmentCmd.AddCommand(createCmd)
	AssignmentCmd.AddCommand(deleteCmd)
}
