// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/flight-search/ryanair-api/internal/infrastructure/timeutil"
)

// TestDataDir returns the absolute path of test/testdata.
func TestDataDir() string {
	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		return filepath.Join("test", "testdata")
	}
	// Navigate to project root (testutil is in test/testutil)
	return filepath.Join(filepath.Dir(currentFile), "..", "testdata")
}

// ReadTestData reads a file from the testdata directory.
// It is safe to call from goroutines other than the test's own.
func ReadTestData(filename string) ([]byte, error) {
	return os.ReadFile(filepath.Join(TestDataDir(), filename))
}

// LoadTestJSON loads a JSON file from the testdata directory.
// The filename should be relative to the testdata directory.
func LoadTestJSON(t *testing.T, filename string) []byte {
	t.Helper()

	data, err := ReadTestData(filename)
	if err != nil {
		t.Fatalf("Failed to load test file %s: %v", filename, err)
	}
	return data
}

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := timeutil.ParseDate(dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}
