package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/amonks/todos/internal/config"
	"github.com/amonks/todos/internal/logging"
	"github.com/amonks/todos/internal/paths"
	"github.com/amonks/todos/internal/state"
	"github.com/amonks/todos/internal/todoenv"
	"github.com/amonks/todos/todo"
)

// resolveConfig loads configuration for dir and applies environment and
// flag overrides, flags taking precedence.
func resolveConfig(dir string) (*config.Config, error) {
	cfg, err := config.Load(dir)
	if err != nil {
		return nil, err
	}

	vars, err := todoenv.Load(dir)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv(vars)

	if globalDataDir != "" {
		cfg.Store.Dir = globalDataDir
	}
	if globalBackend != "" {
		cfg.Store.Backend = globalBackend
	}
	if globalLogLevel != "" {
		cfg.Log.Level = globalLogLevel
	}
	return cfg, nil
}

// initialFilter returns the default filter with the configured sort.
func initialFilter(cfg *config.Config) (todo.FilterState, error) {
	filter := todo.DefaultFilter()

	key, err := todo.ParseSortKey(cfg.View.SortKey)
	if err != nil {
		return todo.FilterState{}, fmt.Errorf("config view.sort-key: %w", err)
	}
	dir, err := todo.ParseSortDir(cfg.View.SortDir)
	if err != nil {
		return todo.FilterState{}, fmt.Errorf("config view.sort-dir: %w", err)
	}

	filter.SortKey = key
	filter.SortDir = dir
	return filter, nil
}

// openTodoStore opens the store for the current directory. The returned
// release function closes the underlying backend.
func openTodoStore() (*todo.Store, func(), error) {
	cwd, err := paths.WorkingDir()
	if err != nil {
		return nil, nil, err
	}

	cfg, err := resolveConfig(cwd)
	if err != nil {
		return nil, nil, err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	logger := logging.New(os.Stderr, level)

	dir, err := cfg.StateDir()
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create state dir: %w", err)
	}

	backend, err := state.OpenBackend(state.Kind(cfg.Store.Backend), dir)
	if err != nil {
		return nil, nil, err
	}
	slots := state.NewSlots(backend, logger)
	release := func() {
		if err := slots.Close(); err != nil {
			logger.Warn("failed to close backend", "err", err)
		}
	}

	filter, err := initialFilter(cfg)
	if err != nil {
		release()
		return nil, nil, err
	}

	store, err := todo.Open(slots, todo.OpenOptions{
		Collator: todo.NewCollator(cfg.View.Locale),
		Logger:   logger,
		Filter:   filter,
	})
	if err != nil {
		release()
		return nil, nil, err
	}

	logger.Debug("opened store", "backend", cfg.Store.Backend, "dir", dir)
	return store, release, nil
}

// resolveTodoID expands a unique ID prefix, reporting unknown IDs with a
// not-found exit code.
func resolveTodoID(store *todo.Store, prefix string) (string, error) {
	id, err := store.ResolveID(prefix)
	if errors.Is(err, todo.ErrTodoNotFound) {
		return "", notFound(err)
	}
	return id, err
}

func resolveTodoIDs(store *todo.Store, prefixes []string) ([]string, error) {
	ids := make([]string, 0, len(prefixes))
	for _, prefix := range prefixes {
		id, err := resolveTodoID(store, prefix)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func resolveCategory(store *todo.Store, value string) (todo.Category, error) {
	category, err := store.ResolveCategory(value)
	if errors.Is(err, todo.ErrCategoryNotFound) {
		return todo.Category{}, notFound(err)
	}
	return category, err
}
