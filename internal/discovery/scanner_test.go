package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScanner_Scan(t *testing.T) {
	// Create a temporary directory structure for testing
	tmpDir, err := os.MkdirTemp("", "stp-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	testDirs := []string{
		"src/test/groovy/com/example",
		"src/main/groovy",
		"build",
		".gradle",
	}
	for _, dir := range testDirs {
		if err := os.MkdirAll(filepath.Join(tmpDir, dir), 0755); err != nil {
			t.Fatalf("failed to create dir %s: %v", dir, err)
		}
	}

	testFiles := []string{
		"src/test/groovy/com/example/OrderSpec.groovy",
		"src/test/groovy/com/example/PaymentSpec.groovy",
		"src/test/groovy/com/example/LegacyTest.groovy",
		"src/main/groovy/Order.groovy",
		"build/OrderSpec.groovy",
		".gradle/CachedSpec.groovy",
		"notes.txt",
	}
	for _, file := range testFiles {
		fullPath := filepath.Join(tmpDir, file)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", file, err)
		}
		if err := os.WriteFile(fullPath, []byte("spec"), 0644); err != nil {
			t.Fatalf("failed to create file %s: %v", file, err)
		}
	}

	scanner := NewScanner([]string{"build"})

	t.Run("scans spec files correctly", func(t *testing.T) {
		results, err := scanner.Scan(tmpDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Specs under build/ and the hidden .gradle/ must be skipped,
		// and plain sources are not spec files.
		if len(results) != 3 {
			t.Errorf("expected 3 spec files, got %d: %v", len(results), results)
		}
	})

	t.Run("returns error for non-existent directory", func(t *testing.T) {
		if _, err := scanner.Scan("/non/existent/path"); err == nil {
			t.Error("expected error for non-existent directory")
		}
	})

	t.Run("returns error for file instead of directory", func(t *testing.T) {
		testFile := filepath.Join(tmpDir, "notes.txt")
		if _, err := scanner.Scan(testFile); err == nil {
			t.Error("expected error for file path")
		}
	})
}
