package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amonks/todos/internal/listflags"
	"github.com/amonks/todos/internal/ui"
	"github.com/amonks/todos/todo"
)

var categoryCmd = &cobra.Command{
	Use:     "category",
	Aliases: []string{"categories"},
	Short:   "Manage categories",
}

// category list
var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	Args:  cobra.NoArgs,
	RunE:  runCategoryList,
}

var categoryListJSON bool

// category add
var categoryAddCmd = &cobra.Command{
	Use:   "add <name> <color> [icon]",
	Short: "Add a category",
	Args:  cobra.RangeArgs(2, 3),
	RunE:  runCategoryAdd,
}

// category update
var categoryUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a category",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoryUpdate,
}

var (
	categoryUpdateName  string
	categoryUpdateColor string
	categoryUpdateIcon  string
)

// category delete
var categoryDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a category and uncategorize its todos",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoryDelete,
}

func init() {
	rootCmd.AddCommand(categoryCmd)
	categoryCmd.AddCommand(categoryListCmd, categoryAddCmd, categoryUpdateCmd, categoryDeleteCmd)

	listflags.AddJSONFlag(categoryListCmd, &categoryListJSON)

	categoryUpdateCmd.Flags().StringVar(&categoryUpdateName, "name", "", "New name")
	categoryUpdateCmd.Flags().StringVar(&categoryUpdateColor, "color", "", "New color (#rrggbb)")
	categoryUpdateCmd.Flags().StringVar(&categoryUpdateIcon, "icon", "", "New icon")
}

func runCategoryList(cmd *cobra.Command, args []string) error {
	store, release, err := openTodoStore()
	if err != nil {
		return err
	}
	defer release()

	categories := store.Categories()
	if categoryListJSON {
		return encodeJSONToStdout(categories)
	}

	if len(categories) == 0 {
		fmt.Println("No categories found.")
		return nil
	}
	fmt.Print(formatCategoryTable(categories, store.AllTodos(), ui.ColorEnabled()))
	return nil
}

func formatCategoryTable(categories []todo.Category, todos []todo.Todo, color bool) string {
	counts := make(map[string]int, len(categories))
	for _, t := range todos {
		if t.CategoryID != nil {
			counts[*t.CategoryID]++
		}
	}

	builder := ui.NewTableBuilder([]string{"ID", "NAME", "COLOR", "TODOS"}, len(categories))
	for _, c := range categories {
		builder.AddRow([]string{
			c.ID,
			ui.CategoryBadge(c, color),
			c.Color,
			fmt.Sprint(counts[c.ID]),
		})
	}
	return builder.String()
}

func runCategoryAdd(cmd *cobra.Command, args []string) error {
	name := strings.TrimSpace(args[0])
	if err := todo.ValidateCategoryName(name); err != nil {
		return err
	}
	color := strings.TrimSpace(args[1])
	if err := todo.ValidateColor(color); err != nil {
		return err
	}
	icon := ""
	if len(args) > 2 {
		icon = strings.TrimSpace(args[2])
	}

	store, release, err := openTodoStore()
	if err != nil {
		return err
	}
	defer release()

	created := store.CreateCategory(name, color, icon)
	fmt.Printf("Created category %s: %s\n", created.ID, created.Name)
	return nil
}

func runCategoryUpdate(cmd *cobra.Command, args []string) error {
	upd := todo.CategoryUpdate{}
	if cmd.Flags().Changed("name") {
		name := strings.TrimSpace(categoryUpdateName)
		if err := todo.ValidateCategoryName(name); err != nil {
			return err
		}
		upd.Name = &name
	}
	if cmd.Flags().Changed("color") {
		color := strings.TrimSpace(categoryUpdateColor)
		if err := todo.ValidateColor(color); err != nil {
			return err
		}
		upd.Color = &color
	}
	if cmd.Flags().Changed("icon") {
		icon := strings.TrimSpace(categoryUpdateIcon)
		upd.Icon = &icon
	}
	if upd == (todo.CategoryUpdate{}) {
		return fmt.Errorf("at least one of --name, --color, or --icon is required")
	}

	store, release, err := openTodoStore()
	if err != nil {
		return err
	}
	defer release()

	category, err := resolveCategory(store, args[0])
	if err != nil {
		return err
	}

	store.UpdateCategory(category.ID, upd)

	updated, _ := store.ResolveCategory(category.ID)
	fmt.Printf("Updated category %s: %s\n", updated.ID, updated.Name)
	return nil
}

func runCategoryDelete(cmd *cobra.Command, args []string) error {
	store, release, err := openTodoStore()
	if err != nil {
		return err
	}
	defer release()

	category, err := resolveCategory(store, args[0])
	if err != nil {
		return err
	}

	store.DeleteCategory(category.ID)
	fmt.Printf("Deleted category %s: %s\n", category.ID, category.Name)
	return nil
}
