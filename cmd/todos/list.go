package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/amonks/todos/internal/listflags"
	"github.com/amonks/todos/internal/markdown"
	"github.com/amonks/todos/internal/ui"
	"github.com/amonks/todos/todo"
)

// list
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List todos",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

var (
	listStatus   string
	listPriority string
	listCategory string
	listSearch   string
	listSort     string
	listDesc     bool
	listJSON     bool
)

// show
var showCmd = &cobra.Command{
	Use:   "show <id>...",
	Short: "Show todo details",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runShow,
}

var showJSON bool

// stats
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show completion statistics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

var statsJSON bool

func init() {
	rootCmd.AddCommand(listCmd, showCmd, statsCmd)

	listCmd.Flags().StringVar(&listStatus, "status", "all", "Filter by status (all, todo, in_progress, done)")
	listCmd.Flags().StringVar(&listPriority, "priority", "all", "Filter by priority (all, urgent, high, medium, low)")
	listCmd.Flags().StringVar(&listCategory, "category", "all", "Filter by category name or ID (all, none)")
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Filter by title or description substring")
	listflags.AddSortFlags(listCmd, &listSort, &listDesc)
	listflags.AddJSONFlag(listCmd, &listJSON)

	listflags.AddJSONFlag(showCmd, &showJSON)

	listflags.AddJSONFlag(statsCmd, &statsJSON)
}

func runList(cmd *cobra.Command, args []string) error {
	store, release, err := openTodoStore()
	if err != nil {
		return err
	}
	defer release()

	filter, err := listFilter(cmd, store)
	if err != nil {
		return err
	}
	store.SetFilter(filter)

	todos := store.Todos()
	if listJSON {
		return encodeJSONToStdout(todos)
	}

	printTodoTable(todos, store.Categories(), store.IDIndex().PrefixLengths(), time.Now())
	return nil
}

// listFilter layers the list flags over the store's initial filter.
func listFilter(cmd *cobra.Command, store *todo.Store) (todo.FilterState, error) {
	filter := store.Filter()

	if !isAll(listStatus) {
		status, err := todo.ParseStatus(listStatus)
		if err != nil {
			return todo.FilterState{}, err
		}
		filter.Status = status
	}

	if !isAll(listPriority) {
		priority, err := todo.ParsePriority(listPriority)
		if err != nil {
			return todo.FilterState{}, err
		}
		filter.Priority = priority
	}

	switch {
	case isAll(listCategory):
		filter.CategoryID = todo.CategoryAll
	case strings.EqualFold(strings.TrimSpace(listCategory), "none"):
		filter.CategoryID = todo.CategoryNone
	default:
		category, err := resolveCategory(store, listCategory)
		if err != nil {
			return todo.FilterState{}, err
		}
		filter.CategoryID = category.ID
	}

	filter.Search = strings.TrimSpace(listSearch)

	if cmd.Flags().Changed("sort") {
		key, err := todo.ParseSortKey(listSort)
		if err != nil {
			return todo.FilterState{}, err
		}
		filter.SortKey = key
	}
	if cmd.Flags().Changed("desc") {
		filter.SortDir = todo.SortAsc
		if listDesc {
			filter.SortDir = todo.SortDesc
		}
	}

	return filter, nil
}

func isAll(value string) bool {
	value = strings.TrimSpace(value)
	return value == "" || strings.EqualFold(value, "all")
}

func runShow(cmd *cobra.Command, args []string) error {
	store, release, err := openTodoStore()
	if err != nil {
		return err
	}
	defer release()

	ids, err := resolveTodoIDs(store, args)
	if err != nil {
		return err
	}

	todos := make([]todo.Todo, 0, len(ids))
	for _, id := range ids {
		item, _ := store.Todo(id)
		todos = append(todos, item)
	}

	if showJSON {
		return encodeJSONToStdout(todos)
	}

	highlight := storeHighlighter(store)
	theme := markdown.ThemeFor(store.DarkMode(), ui.ColorEnabled())
	categories := store.Categories()
	now := time.Now()
	for i, t := range todos {
		if i > 0 {
			fmt.Println("---")
		}
		printTodoDetail(t, categories, highlight, theme, now)
	}
	return nil
}

type statsOutput struct {
	todo.Stats
	CompletionRate int `json:"completionRate"`
}

func runStats(cmd *cobra.Command, args []string) error {
	store, release, err := openTodoStore()
	if err != nil {
		return err
	}
	defer release()

	stats := store.Stats()
	if statsJSON {
		return encodeJSONToStdout(statsOutput{Stats: stats, CompletionRate: stats.CompletionRate()})
	}

	fmt.Print(formatStats(stats))
	return nil
}

func formatStats(stats todo.Stats) string {
	builder := ui.NewTableBuilder([]string{"TOTAL", "TODO", "IN PROGRESS", "DONE", "OVERDUE", "COMPLETE"}, 1)
	builder.AddRow([]string{
		fmt.Sprint(stats.Total),
		fmt.Sprint(stats.Todo),
		fmt.Sprint(stats.InProgress),
		fmt.Sprint(stats.Done),
		fmt.Sprint(stats.Overdue),
		fmt.Sprintf("%d%%", stats.CompletionRate()),
	})
	return builder.String()
}
