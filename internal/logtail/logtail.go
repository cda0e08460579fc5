package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

// Read returns at most maxLines from the end of the file at path, oldest
// first. A non-positive maxLines returns every line. A missing file yields no
// lines and no error.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
		if maxLines > 0 && len(lines) > 2*maxLines {
			lines = append(lines[:0], lines[len(lines)-maxLines:]...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	return lines, nil
}

// Entry is one structured log line as written by zerolog.
type Entry struct {
	Time    time.Time
	Level   string
	Message string
	Fields  map[string]string
	Raw     string // original line when it was not JSON
}

// ParseEntry decodes a zerolog JSON line. Lines that are not JSON objects are
// returned with only Raw set.
func ParseEntry(line string) Entry {
	var payload map[string]any
	if err := json.Unmarshal([]byte(line), &payload); err != nil || payload == nil {
		return Entry{Raw: line}
	}

	entry := Entry{Fields: map[string]string{}}
	for key, value := range payload {
		switch key {
		case "time":
			if s, ok := value.(string); ok {
				if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
					entry.Time = t
				}
			}
		case "level":
			entry.Level, _ = value.(string)
		case "message":
			entry.Message, _ = value.(string)
		default:
			entry.Fields[key] = fieldText(value)
		}
	}
	return entry
}

// Format renders the entry as "15:04:05 LEVEL message key=value ...", with
// fields sorted by key.
func (e Entry) Format() string {
	if e.Raw != "" || (e.Level == "" && e.Message == "" && len(e.Fields) == 0) {
		return e.Raw
	}
	parts := make([]string, 0, 3+len(e.Fields))
	if !e.Time.IsZero() {
		parts = append(parts, e.Time.In(time.Local).Format("15:04:05"))
	}
	level := strings.ToUpper(strings.TrimSpace(e.Level))
	if level == "" {
		level = "INFO"
	}
	parts = append(parts, level)
	if msg := strings.TrimSpace(e.Message); msg != "" {
		parts = append(parts, msg)
	}

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, k+"="+e.Fields[k])
	}
	return strings.Join(parts, " ")
}

func fieldText(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case nil:
		return "null"
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(data)
	}
}
