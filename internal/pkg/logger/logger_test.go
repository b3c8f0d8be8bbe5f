package logger

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsolatedLoggerWritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oracle.log")
	l := NewIsolatedLogger(path)

	l.Info("weighting", "adjustment applied", map[string]interface{}{"session_id": "abc"})
	l.Warn("question", "fallback used", nil)
	require.NoError(t, l.Sync())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var entries []map[string]interface{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		entries = append(entries, entry)
	}

	require.Len(t, entries, 2)
	assert.Equal(t, "INFO", entries[0]["level"])
	assert.Equal(t, "adjustment applied", entries[0]["message"])
	assert.Equal(t, "weighting", entries[0]["module"])
	assert.Equal(t, "WARN", entries[1]["level"])
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	l.Error("any", "ignored", map[string]interface{}{"error": "boom"})
	assert.NoError(t, l.Sync())
}
