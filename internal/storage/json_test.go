package storage

import (
	"testing"
	"time"

	"stp/internal/config"
	"stp/internal/domain"
)

func TestJSONStorage_SaveLoad(t *testing.T) {
	cfg := config.New()
	cfg.ProjectPath = t.TempDir()
	st := NewJSONStorage(cfg)

	runs := []domain.ClassRun{
		{ClassName: "com.example.ASpec", Success: true},
		{ClassName: "com.example.BSpec", Success: false},
	}
	failures := []domain.FailedIteration{
		{
			ClassName:   "com.example.BSpec",
			MethodName:  "adds",
			DisplayName: "adds [a: 1, b: 2, #0]",
			Message:     "condition not satisfied",
		},
	}

	if err := st.Save(runs, failures, 3*time.Second, 2); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	output, err := st.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if output.Meta.TotalClasses != 2 || output.Meta.FailedClasses != 1 {
		t.Errorf("unexpected meta: %+v", output.Meta)
	}
	if len(output.Details) != 1 || output.Details[0].MethodName != "adds" {
		t.Errorf("unexpected details: %+v", output.Details)
	}
	if output.Meta.Workers != 2 {
		t.Errorf("expected 2 workers, got %d", output.Meta.Workers)
	}
}

func TestJSONStorage_LoadMissing(t *testing.T) {
	cfg := config.New()
	cfg.ProjectPath = t.TempDir()
	st := NewJSONStorage(cfg)

	if _, err := st.Load(); err == nil {
		t.Error("expected error for missing results file")
	}
}
