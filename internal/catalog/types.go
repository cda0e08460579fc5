package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// Movie is one entry of the remote movie listing. Only entries with a
// string title survive decoding.
type Movie struct {
	ID      string // raw text of the "id" field, used as a rendering key
	Title   string
	Image   string
	Rating  string // verbatim rating text; empty when absent or falsy
	IMDbURL string
}

const ratingUnavailable = "N/A"

// RatingLabel returns the rating as received, or "N/A" when there is none.
// Values are not validated, so negative or out-of-range ratings pass through.
func (m Movie) RatingLabel() string {
	if m.Rating == "" {
		return ratingUnavailable
	}
	return m.Rating
}

var errNotArray = errors.New("response is not a JSON array")

// DecodeMovies parses a JSON array of movie records. Elements that are null,
// not objects, or lack a string "movie" field are dropped; the rest keep
// their order.
func DecodeMovies(data []byte) ([]Movie, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("decode response: %w", errNotArray)
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(trimmed, &elements); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	movies := make([]Movie, 0, len(elements))
	for _, raw := range elements {
		if movie, ok := decodeMovie(raw); ok {
			movies = append(movies, movie)
		}
	}
	return movies, nil
}

func decodeMovie(raw json.RawMessage) (Movie, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return Movie{}, false
	}
	title, ok := jsonString(fields["movie"])
	if !ok {
		return Movie{}, false
	}
	return Movie{
		ID:      scalarText(fields["id"]),
		Title:   title,
		Image:   scalarText(fields["image"]),
		Rating:  ratingText(fields["rating"]),
		IMDbURL: scalarText(fields["imdb_url"]),
	}, true
}

// jsonString reports whether raw is a JSON string and returns its value.
func jsonString(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// scalarText renders a JSON value as display text: strings unquoted, null or
// missing as empty, anything else as its literal JSON.
func scalarText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	if s, ok := jsonString(raw); ok {
		return s
	}
	return string(raw)
}

func ratingText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	switch string(raw) {
	case "", "null", "false":
		return ""
	}
	if f, err := strconv.ParseFloat(string(raw), 64); err == nil {
		if f == 0 {
			return ""
		}
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return scalarText(raw)
}
