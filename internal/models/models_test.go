package models

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Mode
		wantErr bool
	}{
		{"files", "files", ModeFiles, false},
		{"folder", "folder", ModeFolder, false},
		{"uppercase", "FOLDER", ModeFolder, false},
		{"padded", " files ", ModeFiles, false},
		{"plural folder", "folders", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePair(t *testing.T) {
	t.Run("splits on separator", func(t *testing.T) {
		p, err := ParsePair("Old.Name.mkv --> Clean Name (2001).mkv")
		require.NoError(t, err)
		assert.Equal(t, Pair{Old: "Old.Name.mkv", New: "Clean Name (2001).mkv"}, p)
	})

	t.Run("splits on first separator only", func(t *testing.T) {
		p, err := ParsePair("a --> b --> c")
		require.NoError(t, err)
		assert.Equal(t, "a", p.Old)
		assert.Equal(t, "b --> c", p.New)
	})

	t.Run("arrow without spaces is not a separator", func(t *testing.T) {
		_, err := ParsePair("a-->b")
		assert.True(t, errors.Is(err, ErrMalformedPair))
	})

	t.Run("old name keeps surrounding spaces", func(t *testing.T) {
		p, err := ParsePair(" Lead.mkv  -->  Lead (2001).mkv \r")
		require.NoError(t, err)
		assert.Equal(t, " Lead.mkv ", p.Old)
		assert.Equal(t, "Lead (2001).mkv", p.New)
	})

	t.Run("blank old name", func(t *testing.T) {
		_, err := ParsePair("   --> b")
		assert.True(t, errors.Is(err, ErrMalformedPair))
	})

	t.Run("empty new name", func(t *testing.T) {
		_, err := ParsePair("a -->  ")
		assert.True(t, errors.Is(err, ErrMalformedPair))
	})
}

func TestPairRoundTrip(t *testing.T) {
	pairs := Zip([]string{"A.mkv", "B.mkv"}, []string{"A (2001)", "B (2002)"})
	lines := Lines(pairs)
	assert.Equal(t, []string{"A.mkv --> A (2001)", "B.mkv --> B (2002)"}, lines)

	for i, line := range lines {
		p, err := ParsePair(line)
		require.NoError(t, err)
		assert.Equal(t, pairs[i], p)
	}
}

func TestHeaders(t *testing.T) {
	movie, err := HeaderFor(ContentFor(false))
	require.NoError(t, err)
	assert.Equal(t, ContentMovie, movie.Content)

	anime, err := HeaderFor(ContentFor(true))
	require.NoError(t, err)
	assert.Equal(t, ContentAnime, anime.Content)
	assert.NotEqual(t, movie.Text, anime.Text)

	for _, h := range DefaultHeaders() {
		assert.NotContains(t, h.Text, "\n", "header %s must fit on the first prompt line", h.Content)
		assert.True(t, strings.HasPrefix(h.Text, "Please clean up"))
	}

	_, err = ParseContentType("documentary")
	assert.Error(t, err)
}
