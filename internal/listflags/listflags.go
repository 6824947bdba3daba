package listflags

import "github.com/spf13/cobra"

// AddJSONFlag adds the shared --json flag to read-only commands.
func AddJSONFlag(cmd *cobra.Command, target *bool) {
	if target == nil {
		cmd.Flags().Bool("json", false, "Output as JSON")
		return
	}

	cmd.Flags().BoolVar(target, "json", false, "Output as JSON")
}

// AddSortFlags adds --sort and --desc for commands that print ordered todos.
func AddSortFlags(cmd *cobra.Command, key *string, desc *bool) {
	cmd.Flags().StringVar(key, "sort", "", "Sort by order, createdAt, dueDate, priority, or title")
	cmd.Flags().BoolVar(desc, "desc", false, "Sort in descending order")
}
