package mailer

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Template represents an email template with frontmatter metadata and body.
type Template struct {
	Metadata map[string]any
	Body     string
}

// Subject returns the subject declared in frontmatter, if any.
// Both "subject" and "Subject" keys are accepted.
func (t *Template) Subject() (string, bool) {
	for _, key := range []string{"subject", "Subject"} {
		if s, ok := t.Metadata[key].(string); ok && strings.TrimSpace(s) != "" {
			return s, true
		}
	}
	return "", false
}

var frontmatterDelimiter = []byte("---")

// ParseTemplate splits template content into frontmatter metadata and body.
// Frontmatter is recognized only when the content starts with a "---" line;
// anything else is returned as the body unchanged.
func ParseTemplate(content []byte) (*Template, error) {
	rest, ok := cutDelimiterLine(content)
	if !ok {
		return &Template{
			Metadata: make(map[string]any),
			Body:     string(content),
		}, nil
	}

	// Find the closing delimiter at the start of a line.
	var frontmatter, body []byte
	found := false
	for offset := 0; offset <= len(rest); {
		line := rest[offset:]
		if after, ok := cutDelimiterLine(line); ok {
			frontmatter, body, found = rest[:offset], after, true
			break
		}
		nl := bytes.IndexByte(line, '\n')
		if nl < 0 {
			break
		}
		offset += nl + 1
	}
	if !found {
		return nil, fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
	}

	metadata := make(map[string]any)
	if len(bytes.TrimSpace(frontmatter)) > 0 {
		if err := yaml.Unmarshal(frontmatter, &metadata); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
		}
	}

	return &Template{
		Metadata: metadata,
		Body:     string(body),
	}, nil
}

// cutDelimiterLine reports whether b starts with a "---" line and returns
// the bytes after that line.
func cutDelimiterLine(b []byte) ([]byte, bool) {
	after, ok := bytes.CutPrefix(b, frontmatterDelimiter)
	if !ok {
		return nil, false
	}
	switch {
	case len(after) == 0:
		return after, true
	case after[0] == '\n':
		return after[1:], true
	case len(after) > 1 && after[0] == '\r' && after[1] == '\n':
		return after[2:], true
	}
	return nil, false
}
