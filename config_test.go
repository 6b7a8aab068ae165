package genericdate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "gendate.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
extra_date_patterns:
  - "yyyy-'Q'q"
suffix_threshold: 4
timezone: UTC
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultDatePatterns(), cfg.DatePatterns)
	assert.Equal(t, DefaultTimePatterns(), cfg.TimePatterns)
	assert.Equal(t, 4, cfg.SuffixThreshold)

	opts, err := cfg.ParserOptions()
	require.NoError(t, err)
	p, err := NewParser(opts...)
	require.NoError(t, err)
	assert.Equal(t, "yyyy-'Q'q", p.DatePatterns()[0])
	assert.Equal(t, len(defaultDatePatterns)+1, len(p.DatePatterns()))
	assert.Equal(t, 4, p.threshold)

	ts, err := p.ParseDate("2020-Q2")
	require.NoError(t, err)
	assert.Equal(t, "2020-04-01 00:00:00 +0000 UTC", fmt.Sprintf("%v", ts))
}

func TestLoadConfigReplaceLists(t *testing.T) {
	path := writeConfig(t, `
date_patterns: ["dd.MM.yyyy"]
time_patterns: [" HH:mm"]
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultSuffixThreshold, cfg.SuffixThreshold)

	opts, err := cfg.ParserOptions()
	require.NoError(t, err)
	p, err := NewParser(opts...)
	require.NoError(t, err)
	assert.Equal(t, []string{"dd.MM.yyyy"}, p.DatePatterns())
	assert.Equal(t, []string{" HH:mm"}, p.TimePatterns())
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, err = LoadConfig(writeConfig(t, "date_patterns: {"))
	assert.Error(t, err)

	cfg := DefaultConfig()
	cfg.Timezone = "Mars/Olympus_Mons"
	_, err = cfg.ParserOptions()
	assert.Error(t, err)

	cfg = DefaultConfig()
	cfg.ExtraTimePatterns = []string{"HH:mm'"}
	opts, err := cfg.ParserOptions()
	require.NoError(t, err)
	_, err = NewParser(opts...)
	assert.True(t, errors.Is(err, ErrBadPattern))
}
