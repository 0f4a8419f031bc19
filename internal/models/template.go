package models

import (
	"fmt"
	"strings"
)

// ContentType selects the wording of the prompt header.
type ContentType string

const (
	ContentMovie ContentType = "movie"
	ContentAnime ContentType = "anime"
)

// Header is a fixed instruction block placed on the first line of the prompt.
type Header struct {
	Content     ContentType
	Description string
	Text        string
}

const movieHeader = "Please clean up the following list of films and/or series and return the english names if possible." +
	"The output pattern must be <name> <(year)>." +
	"The output must be in the same order as the input." +
	"Remove all extra dots, tags, release info or alternate names." +
	"Preserve following file extentions: .mp4, .mkv, .divx, .avi, .flv, .vob." +
	"Use the most widely accepted English release titles if possible, if not, preserve the old name." +
	"Provide the output in plain text to copy to the clipboard."

const animeHeader = "Please clean up the following list of anime series and/or films and return the official english names if possible." +
	"The output pattern must be <name> <(year)>, where year is the year of the first broadcast or release." +
	"The output must be in the same order as the input and contain exactly one line per input line." +
	"Remove all extra dots, fansub group tags in brackets, resolution, codec, checksum, release info or alternate names." +
	"Preserve season and episode numbers as SxxExx if present." +
	"Preserve following file extentions: .mp4, .mkv, .divx, .avi, .flv, .vob." +
	"Prefer the title used by the official English release; if there is none, use the romanized Japanese title." +
	"Provide the output in plain text to copy to the clipboard."

// DefaultHeaders returns the built-in prompt headers.
func DefaultHeaders() []Header {
	return []Header{
		{
			Content:     ContentMovie,
			Description: "Films and series, cleaned to <name> (<year>)",
			Text:        movieHeader,
		},
		{
			Content:     ContentAnime,
			Description: "Anime series and films, fansub tags removed",
			Text:        animeHeader,
		},
	}
}

// HeaderFor returns the built-in header for a content type.
func HeaderFor(c ContentType) (Header, error) {
	for _, h := range DefaultHeaders() {
		if h.Content == c {
			return h, nil
		}
	}
	return Header{}, fmt.Errorf("unknown content type %q (use 'movie' or 'anime')", c)
}

// ParseContentType normalizes a content type name.
func ParseContentType(s string) (ContentType, error) {
	c := ContentType(strings.ToLower(strings.TrimSpace(s)))
	if _, err := HeaderFor(c); err != nil {
		return "", err
	}
	return c, nil
}

// ContentFor maps the --anime flag to a content type.
func ContentFor(anime bool) ContentType {
	if anime {
		return ContentAnime
	}
	return ContentMovie
}
