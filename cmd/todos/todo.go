package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amonks/todos/internal/editor"
	"github.com/amonks/todos/todo"
)

// add
var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a todo",
	Long: `Add a todo at the end of the list.

Without a title in an interactive terminal, $EDITOR opens on a template.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAdd,
}

var (
	addDescription string
	addPriority    string
	addCategory    string
	addDue         string
	addEdit        bool
	addNoEdit      bool
)

// update
var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a todo",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpdate,
}

var (
	updateTitle       string
	updateDescription string
	updateStatus      string
	updatePriority    string
	updateCategory    string
	updateNoCategory  bool
	updateDue         string
	updateNoDue       bool
	updateEdit        bool
	updateNoEdit      bool
)

// toggle
var toggleCmd = &cobra.Command{
	Use:   "toggle <id>...",
	Short: "Mark todos done, or reopen done todos",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runToggle,
}

// delete
var deleteCmd = &cobra.Command{
	Use:     "delete <id>...",
	Aliases: []string{"rm"},
	Short:   "Delete todos",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runDelete,
}

// move
var moveCmd = &cobra.Command{
	Use:   "move <id> <target-id>",
	Short: "Move a todo to another todo's position",
	Args:  cobra.ExactArgs(2),
	RunE:  runMove,
}

// clear
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every done todo",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

func init() {
	rootCmd.AddCommand(addCmd, updateCmd, toggleCmd, deleteCmd, moveCmd, clearCmd)

	addDescriptionFlagAliases(addCmd, updateCmd)
	addDueFlagAliases(addCmd, updateCmd)

	// add flags
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Description (use '-' to read from stdin)")
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", string(todo.PriorityMedium), "Priority (urgent, high, medium, low)")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "Category name or ID")
	addCmd.Flags().StringVar(&addDue, "due", "", "Due date (YYYY-MM-DD)")
	addCmd.Flags().BoolVarP(&addEdit, "edit", "e", false, "Open $EDITOR")
	addCmd.Flags().BoolVar(&addNoEdit, "no-edit", false, "Do not open $EDITOR")

	// update flags
	updateCmd.Flags().StringVar(&updateTitle, "title", "", "New title")
	updateCmd.Flags().StringVarP(&updateDescription, "description", "d", "", "New description (use '-' to read from stdin)")
	updateCmd.Flags().StringVar(&updateStatus, "status", "", "New status (todo, in_progress, done)")
	updateCmd.Flags().StringVarP(&updatePriority, "priority", "p", "", "New priority (urgent, high, medium, low)")
	updateCmd.Flags().StringVarP(&updateCategory, "category", "c", "", "New category name or ID")
	updateCmd.Flags().BoolVar(&updateNoCategory, "no-category", false, "Remove the category")
	updateCmd.Flags().StringVar(&updateDue, "due", "", "New due date (YYYY-MM-DD)")
	updateCmd.Flags().BoolVar(&updateNoDue, "no-due", false, "Remove the due date")
	updateCmd.Flags().BoolVarP(&updateEdit, "edit", "e", false, "Open $EDITOR")
	updateCmd.Flags().BoolVar(&updateNoEdit, "no-edit", false, "Do not open $EDITOR")
	updateCmd.MarkFlagsMutuallyExclusive("category", "no-category")
	updateCmd.MarkFlagsMutuallyExclusive("due", "no-due")
}

func runAdd(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("description") {
		desc, err := resolveDescriptionFromStdin(addDescription, os.Stdin)
		if err != nil {
			return err
		}
		addDescription = desc
	}

	store, release, err := openTodoStore()
	if err != nil {
		return err
	}
	defer release()

	var (
		title string
		opts  todo.CreateOptions
	)

	// Determine whether to open editor:
	// - --edit forces editor
	// - --no-edit skips editor
	// - otherwise, open editor when no title was given and stdin is a terminal
	useEditor := addEdit || (!addNoEdit && len(args) == 0 && editor.IsInteractive())

	if useEditor {
		data := editor.DefaultCreateData()
		if len(args) > 0 {
			data.Title = args[0]
		}
		if cmd.Flags().Changed("priority") {
			data.Priority = addPriority
		}
		if cmd.Flags().Changed("description") {
			data.Description = addDescription
		}
		data.Category = addCategory
		data.Due = addDue

		parsed, err := editor.EditTodoWithData(data)
		if err != nil {
			return err
		}
		opts, err = parsed.ToCreateOptions(store.Categories())
		if err != nil {
			return err
		}
		title = parsed.Title
	} else {
		if len(args) == 0 {
			return fmt.Errorf("title is required (use --edit to open editor)")
		}
		title = strings.TrimSpace(args[0])
		if err := todo.ValidateTitle(title); err != nil {
			return err
		}
		opts, err = createOptionsFromFlags(store)
		if err != nil {
			return err
		}
	}

	created := store.Create(title, opts)

	highlight := storeHighlighter(store)
	fmt.Printf("Created todo %s: %s\n", highlight(created.ID), created.Title)
	return nil
}

func createOptionsFromFlags(store *todo.Store) (todo.CreateOptions, error) {
	priority, err := todo.ParsePriority(addPriority)
	if err != nil {
		return todo.CreateOptions{}, err
	}

	opts := todo.CreateOptions{
		Description: addDescription,
		Priority:    priority,
	}

	if addCategory != "" {
		category, err := resolveCategory(store, addCategory)
		if err != nil {
			return todo.CreateOptions{}, err
		}
		opts.CategoryID = todo.StringPtr(category.ID)
	}

	if due := strings.TrimSpace(addDue); due != "" {
		if err := todo.ValidateDueDate(due); err != nil {
			return todo.CreateOptions{}, err
		}
		opts.DueDate = todo.StringPtr(due)
	}

	return opts, nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("description") {
		desc, err := resolveDescriptionFromStdin(updateDescription, os.Stdin)
		if err != nil {
			return err
		}
		updateDescription = desc
	}

	store, release, err := openTodoStore()
	if err != nil {
		return err
	}
	defer release()

	id, err := resolveTodoID(store, args[0])
	if err != nil {
		return err
	}

	hasFlags := hasUpdateFlags(cmd)

	var opts todo.UpdateOptions
	if shouldUseUpdateEditor(hasFlags, updateEdit, updateNoEdit, editor.IsInteractive()) {
		existing, _ := store.Todo(id)
		parsed, err := editor.EditTodo(&existing, store.Categories())
		if err != nil {
			return err
		}
		opts, err = parsed.ToUpdateOptions(store.Categories())
		if err != nil {
			return err
		}
	} else {
		if !hasFlags {
			return fmt.Errorf("at least one update flag is required (use --edit to open editor)")
		}
		opts, err = updateOptionsFromFlags(cmd, store)
		if err != nil {
			return err
		}
	}

	store.Update(id, opts)

	updated, _ := store.Todo(id)
	highlight := storeHighlighter(store)
	fmt.Printf("Updated %s: %s\n", highlight(updated.ID), updated.Title)
	return nil
}

var updateFlagNames = []string{"title", "description", "status", "priority", "category", "no-category", "due", "no-due"}

func hasUpdateFlags(cmd *cobra.Command) bool {
	for _, name := range updateFlagNames {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

func shouldUseUpdateEditor(hasUpdateFlags bool, editFlag bool, noEditFlag bool, interactive bool) bool {
	if editFlag {
		return true
	}
	if noEditFlag {
		return false
	}
	if hasUpdateFlags {
		return false
	}
	return interactive
}

func updateOptionsFromFlags(cmd *cobra.Command, store *todo.Store) (todo.UpdateOptions, error) {
	opts := todo.UpdateOptions{}

	if cmd.Flags().Changed("title") {
		title := strings.TrimSpace(updateTitle)
		if err := todo.ValidateTitle(title); err != nil {
			return todo.UpdateOptions{}, err
		}
		opts.Title = &title
	}
	if cmd.Flags().Changed("description") {
		opts.Description = &updateDescription
	}
	if cmd.Flags().Changed("status") {
		status, err := todo.ParseStatus(updateStatus)
		if err != nil {
			return todo.UpdateOptions{}, err
		}
		opts.Status = &status
	}
	if cmd.Flags().Changed("priority") {
		priority, err := todo.ParsePriority(updatePriority)
		if err != nil {
			return todo.UpdateOptions{}, err
		}
		opts.Priority = &priority
	}

	switch {
	case updateNoCategory:
		opts.CategoryID = todo.Null[string]()
	case cmd.Flags().Changed("category"):
		category, err := resolveCategory(store, updateCategory)
		if err != nil {
			return todo.UpdateOptions{}, err
		}
		opts.CategoryID = todo.Set(category.ID)
	}

	switch {
	case updateNoDue:
		opts.DueDate = todo.Null[string]()
	case cmd.Flags().Changed("due"):
		due := strings.TrimSpace(updateDue)
		if err := todo.ValidateDueDate(due); err != nil {
			return todo.UpdateOptions{}, err
		}
		opts.DueDate = todo.Set(due)
	}

	return opts, nil
}

func runToggle(cmd *cobra.Command, args []string) error {
	store, release, err := openTodoStore()
	if err != nil {
		return err
	}
	defer release()

	ids, err := resolveTodoIDs(store, args)
	if err != nil {
		return err
	}

	highlight := storeHighlighter(store)
	for _, id := range ids {
		store.Toggle(id)
		item, _ := store.Todo(id)
		verb := "Reopened"
		if item.Status == todo.StatusDone {
			verb = "Completed"
		}
		fmt.Printf("%s %s: %s\n", verb, highlight(item.ID), item.Title)
	}
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	store, release, err := openTodoStore()
	if err != nil {
		return err
	}
	defer release()

	ids, err := resolveTodoIDs(store, args)
	if err != nil {
		return err
	}

	highlight := storeHighlighter(store)
	for _, id := range ids {
		item, ok := store.Todo(id)
		if !ok {
			// Listed twice on the command line.
			continue
		}
		label := highlight(item.ID)
		store.Delete(id)
		fmt.Printf("Deleted %s: %s\n", label, item.Title)
	}
	return nil
}

func runMove(cmd *cobra.Command, args []string) error {
	store, release, err := openTodoStore()
	if err != nil {
		return err
	}
	defer release()

	ids, err := resolveTodoIDs(store, args)
	if err != nil {
		return err
	}

	store.Reorder(ids[0], ids[1])

	moved, _ := store.Todo(ids[0])
	highlight := storeHighlighter(store)
	fmt.Printf("Moved %s to position %d: %s\n", highlight(moved.ID), moved.Order+1, moved.Title)
	return nil
}

func runClear(cmd *cobra.Command, args []string) error {
	store, release, err := openTodoStore()
	if err != nil {
		return err
	}
	defer release()

	removed := store.ClearCompleted()
	switch removed {
	case 0:
		fmt.Println("No completed todos.")
	case 1:
		fmt.Println("Cleared 1 completed todo.")
	default:
		fmt.Printf("Cleared %d completed todos.\n", removed)
	}
	return nil
}
