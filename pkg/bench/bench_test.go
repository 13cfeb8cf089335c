package bench

import (
	"os"
	"path/filepath"
	"testing"
)

func smallScenario() Scenario {
	return Scenario{
		Name:     "tiny",
		Capacity: 64,
		Runs:     2,
		Rounds:   3,
		Appends:  4,
		Chunk:    "ab",
	}
}

func TestRun(t *testing.T) {
	results := Run(smallScenario())
	if len(results) != 4 {
		t.Fatalf("got %d results, want 4", len(results))
	}

	wantBytes := int64(2 * 3 * 4 * 2)
	runID := results[0].RunID
	if runID == "" {
		t.Error("empty RunID")
	}
	for _, r := range results {
		if r.RunID != runID {
			t.Errorf("RunID %q differs from %q", r.RunID, runID)
		}
		if r.Scenario != "tiny" {
			t.Errorf("Scenario = %q, want %q", r.Scenario, "tiny")
		}
		if r.Bytes != wantBytes {
			t.Errorf("%s: Bytes = %d, want %d", r.Target, r.Bytes, wantBytes)
		}
		if r.Elapsed <= 0 {
			t.Errorf("%s: Elapsed = %v, want > 0", r.Target, r.Elapsed)
		}
		if r.NsPerOp <= 0 {
			t.Errorf("%s: NsPerOp = %v, want > 0", r.Target, r.NsPerOp)
		}
		if r.MBPerSec <= 0 {
			t.Errorf("%s: MBPerSec = %v, want > 0", r.Target, r.MBPerSec)
		}
	}

	seen := map[string]bool{}
	for _, r := range results {
		seen[r.Target] = true
	}
	for _, want := range []string{"smallstring.Buffer", "smallstring.Pool", "strings.Builder", "bytes.Buffer"} {
		if !seen[want] {
			t.Errorf("missing target %q", want)
		}
	}
}

func TestNormalize(t *testing.T) {
	got := Scenario{}.normalize()
	want := DefaultScenario()
	if got != want {
		t.Errorf("normalize() = %+v, want %+v", got, want)
	}

	partial := Scenario{Name: "custom", Appends: 7}.normalize()
	if partial.Name != "custom" || partial.Appends != 7 {
		t.Errorf("normalize overwrote set fields: %+v", partial)
	}
	if partial.Capacity != want.Capacity || partial.Chunk != want.Chunk {
		t.Errorf("normalize left zero fields: %+v", partial)
	}
}

func TestLoadScenarios(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	content := `scenarios:
  - name: first
    capacity: 1024
    runs: 1
    rounds: 2
    appends: 3
    chunk: xyz
  - appends: 9
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	scenarios, err := LoadScenarios(path)
	if err != nil {
		t.Fatalf("LoadScenarios error: %v", err)
	}
	if len(scenarios) != 2 {
		t.Fatalf("got %d scenarios, want 2", len(scenarios))
	}
	if scenarios[0].Name != "first" || scenarios[0].Chunk != "xyz" || scenarios[0].Appends != 3 {
		t.Errorf("first scenario = %+v", scenarios[0])
	}
	if scenarios[1].Name != "scenario-2" {
		t.Errorf("second scenario name = %q, want %q", scenarios[1].Name, "scenario-2")
	}
	if scenarios[1].Appends != 9 {
		t.Errorf("second scenario appends = %d, want 9", scenarios[1].Appends)
	}
	if scenarios[1].Chunk != DefaultScenario().Chunk {
		t.Errorf("second scenario chunk = %q, want default", scenarios[1].Chunk)
	}
}

func TestLoadScenariosErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadScenarios(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
			t.Error("expected error, got nil")
		}
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.yaml")
		if err := os.WriteFile(path, []byte("scenarios: []\n"), 0o644); err != nil {
			t.Fatalf("WriteFile error: %v", err)
		}
		if _, err := LoadScenarios(path); err == nil {
			t.Error("expected error, got nil")
		}
	})
}
