package genericdate

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAll(t *testing.T) {
	inputs := []string{"2020-01-15", "15.01.2020 10:30:00", "", "nope", "01/15/2020"}
	results, err := ParseAll(context.Background(), inputs, BatchOptions{
		Workers:       2,
		ParserOptions: []ParserOption{WithLocation(time.UTC)},
	})
	require.NoError(t, err)
	require.Len(t, results, len(inputs))

	for i, r := range results {
		assert.Equal(t, i, r.Index)
		assert.Equal(t, inputs[i], r.Input)
	}

	assert.Equal(t, "yyyy-MM-dd", results[0].Pattern)
	assert.Equal(t, "2020-01-15 00:00:00 +0000 UTC", fmt.Sprintf("%v", results[0].Time))

	assert.Equal(t, "dd.MM.yyyy HH:mm:ss", results[1].Pattern)
	assert.Equal(t, "2020-01-15 10:30:00 +0000 UTC", fmt.Sprintf("%v", results[1].Time))

	assert.NoError(t, results[2].Err)
	assert.True(t, results[2].Time.IsZero())
	assert.Equal(t, "", results[2].Pattern)

	assert.True(t, errors.Is(results[3].Err, ErrNoMatch))
	assert.Equal(t, "", results[3].Pattern)

	assert.Equal(t, "MM/dd/yyyy", results[4].Pattern)
}

func TestParseAllTime(t *testing.T) {
	results, err := ParseAll(context.Background(), []string{"14:05:30", "143000", "2.30 pm"}, BatchOptions{
		Workers:       1,
		Time:          true,
		Patterns:      []string{"h.mm a"},
		ParserOptions: []ParserOption{WithLocation(time.UTC)},
	})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "HH:mm:ss", results[0].Pattern)
	assert.Equal(t, "HHmmss", results[1].Pattern)
	assert.Equal(t, "h.mm a", results[2].Pattern)
	assert.Equal(t, "1970-01-01 14:30:00 +0000 UTC", fmt.Sprintf("%v", results[2].Time))
}

func TestParseAllErrors(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ParseAll(ctx, []string{"2020-01-15"}, BatchOptions{})
	assert.True(t, errors.Is(err, context.Canceled))

	_, err = ParseAll(context.Background(), []string{"2020-01-15"}, BatchOptions{
		ParserOptions: []ParserOption{WithDatePatterns("bogus")},
	})
	assert.True(t, errors.Is(err, ErrBadPattern))

	results, err := ParseAll(context.Background(), nil, BatchOptions{Workers: 4})
	assert.NoError(t, err)
	assert.Len(t, results, 0)
}

func TestParseAllManyWorkers(t *testing.T) {
	var inputs []string
	for d := 1; d <= 28; d++ {
		inputs = append(inputs, fmt.Sprintf("%02d/02/2021", d))
	}
	results, err := ParseAll(context.Background(), inputs, BatchOptions{
		Workers:       4,
		ParserOptions: []ParserOption{WithLocation(time.UTC)},
	})
	require.NoError(t, err)
	for i, r := range results {
		require.NoError(t, r.Err)
		assert.Equal(t, i+1, r.Time.Day())
		assert.Equal(t, time.February, r.Time.Month())
		assert.Equal(t, "dd/MM/yyyy", r.Pattern)
	}
}
