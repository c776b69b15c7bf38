package testutil

import (
	"encoding/json"
	"errors"
	"io/fs"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustParseDate(t *testing.T) {
	tests := []struct {
		name      string
		dateStr   string
		wantYear  int
		wantMonth time.Month
		wantDay   int
	}{
		{
			name:      "valid date",
			dateStr:   "2024-06-15",
			wantYear:  2024,
			wantMonth: time.June,
			wantDay:   15,
		},
		{
			name:      "leap year date",
			dateStr:   "2024-02-29",
			wantYear:  2024,
			wantMonth: time.February,
			wantDay:   29,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MustParseDate(t, tt.dateStr)
			assert.Equal(t, tt.wantYear, result.Year())
			assert.Equal(t, tt.wantMonth, result.Month())
			assert.Equal(t, tt.wantDay, result.Day())
		})
	}
}

func TestPtr(t *testing.T) {
	intVal := Ptr(42)
	require.NotNil(t, intVal)
	assert.Equal(t, 42, *intVal)

	strVal := Ptr("DUB")
	require.NotNil(t, strVal)
	assert.Equal(t, "DUB", *strVal)
}

func TestLoadTestJSON(t *testing.T) {
	tests := []struct {
		name          string
		filename      string
		shouldContain string
	}{
		{
			name:          "active airports",
			filename:      "airports_active.json",
			shouldContain: "Dublin",
		},
		{
			name:          "cheapest fares",
			filename:      "cheapest_DUB_STN_2024-06.json",
			shouldContain: "2024-06-15",
		},
		{
			name:          "availability",
			filename:      "availability_DUB_STN.json",
			shouldContain: "FR 202",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := LoadTestJSON(t, tt.filename)
			assert.True(t, json.Valid(data))
			assert.Contains(t, string(data), tt.shouldContain)
		})
	}
}

func TestReadTestData_Missing(t *testing.T) {
	_, err := ReadTestData("does_not_exist.json")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}
