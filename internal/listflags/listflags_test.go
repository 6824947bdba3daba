package listflags

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestAddJSONFlag(t *testing.T) {
	var asJSON bool
	cmd := &cobra.Command{Use: "list"}
	AddJSONFlag(cmd, &asJSON)

	if err := cmd.Flags().Parse([]string{"--json"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if !asJSON {
		t.Fatal("expected --json to set target")
	}
}

func TestAddJSONFlagWithoutTarget(t *testing.T) {
	cmd := &cobra.Command{Use: "list"}
	AddJSONFlag(cmd, nil)

	if cmd.Flags().Lookup("json") == nil {
		t.Fatal("expected json flag to be registered")
	}
}

func TestAddSortFlags(t *testing.T) {
	var key string
	var desc bool
	cmd := &cobra.Command{Use: "list"}
	AddSortFlags(cmd, &key, &desc)

	if err := cmd.Flags().Parse([]string{"--sort", "title", "--desc"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if key != "title" || !desc {
		t.Fatalf("unexpected flags key=%q desc=%v", key, desc)
	}
}
