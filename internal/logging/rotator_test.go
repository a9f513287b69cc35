package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRotator returns a rotator with a byte-sized limit and a clock
// advancing one second per call.
func newTestRotator(t *testing.T, cfg RotatorConfig, maxBytes int64) *LogRotator {
	t.Helper()
	cfg.Dir = t.TempDir()
	r, err := NewLogRotator(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	r.maxSize = maxBytes
	clock := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	r.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return r
}

func TestLogRotator_RotatesPastLimit(t *testing.T) {
	// Arrange
	r := newTestRotator(t, RotatorConfig{}, 10)

	// Act
	_, err := r.Write([]byte("12345678\n"))
	require.NoError(t, err)
	_, err = r.Write([]byte("abcdefgh\n"))
	require.NoError(t, err)

	// Assert
	backups := r.Backups()
	require.Len(t, backups, 1)
	old, err := os.ReadFile(filepath.Join(r.cfg.Dir, backups[0]))
	require.NoError(t, err)
	assert.Equal(t, "12345678\n", string(old))
	current, err := os.ReadFile(r.Path())
	require.NoError(t, err)
	assert.Equal(t, "abcdefgh\n", string(current))
}

func TestLogRotator_OversizedWriteOnEmptyFileDoesNotRotate(t *testing.T) {
	r := newTestRotator(t, RotatorConfig{}, 4)

	_, err := r.Write([]byte("longer than the limit\n"))

	require.NoError(t, err)
	assert.Empty(t, r.Backups())
}

func TestLogRotator_KeepsMaxBackups(t *testing.T) {
	r := newTestRotator(t, RotatorConfig{MaxBackups: 2}, 5)

	for i := 0; i < 5; i++ {
		_, err := r.Write([]byte("line\n"))
		require.NoError(t, err)
	}

	assert.Len(t, r.Backups(), 2)
}

func TestLogRotator_Compress(t *testing.T) {
	r := newTestRotator(t, RotatorConfig{Compress: true}, 5)

	_, err := r.Write([]byte("one\n"))
	require.NoError(t, err)
	_, err = r.Write([]byte("two\n"))
	require.NoError(t, err)

	backups := r.Backups()
	require.Len(t, backups, 1)
	assert.True(t, strings.HasSuffix(backups[0], ".gz"))
}
