package todoenv

import (
	"os"
	"path/filepath"
	"testing"
)

// unsetForTest removes name from the environment and restores it afterwards.
func unsetForTest(t *testing.T, name string) {
	t.Helper()
	t.Setenv(name, "")
	if err := os.Unsetenv(name); err != nil {
		t.Fatalf("unset %s: %v", name, err)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(DataDirVar, " /tmp/todos ")
	t.Setenv(BackendVar, "sqlite")
	unsetForTest(t, LogLevelVar)

	got := FromEnv()

	want := Vars{DataDir: "/tmp/todos", Backend: "sqlite"}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	unsetForTest(t, DataDirVar)
	unsetForTest(t, LogLevelVar)
	t.Setenv(BackendVar, "memory")

	dir := t.TempDir()
	content := "TODOS_DATA_DIR=/srv/todos\nTODOS_BACKEND=sqlite\nTODOS_LOG_LEVEL=debug\n"
	if err := os.WriteFile(filepath.Join(dir, DotEnvFile), []byte(content), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	got, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	// Variables already in the environment win over the file.
	want := Vars{DataDir: "/srv/todos", Backend: "memory", LogLevel: "debug"}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestLoadWithoutDotEnv(t *testing.T) {
	unsetForTest(t, DataDirVar)
	unsetForTest(t, BackendVar)
	unsetForTest(t, LogLevelVar)

	got, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("expected missing .env to be ignored, got %v", err)
	}
	if got != (Vars{}) {
		t.Fatalf("expected no vars, got %+v", got)
	}
}
