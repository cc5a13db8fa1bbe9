package mailer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTemplate_WithFrontmatter(t *testing.T) {
	t.Parallel()

	content := []byte(`---
subject: Quote by {author}
tags: daily
---
<p>{quote}</p>
`)

	tmpl, err := ParseTemplate(content)
	require.NoError(t, err)
	require.Equal(t, "Quote by {author}", tmpl.Metadata["subject"])
	require.Equal(t, "daily", tmpl.Metadata["tags"])
	require.Equal(t, "<p>{quote}</p>\n", tmpl.Body)

	subject, ok := tmpl.Subject()
	require.True(t, ok)
	require.Equal(t, "Quote by {author}", subject)
}

func TestParseTemplate_WithoutFrontmatter(t *testing.T) {
	t.Parallel()

	content := []byte("<html><body><p>{quote}</p></body></html>")

	tmpl, err := ParseTemplate(content)
	require.NoError(t, err)
	require.Empty(t, tmpl.Metadata)
	require.Equal(t, string(content), tmpl.Body)

	_, ok := tmpl.Subject()
	require.False(t, ok)
}

func TestParseTemplate_EmptyContent(t *testing.T) {
	t.Parallel()

	tmpl, err := ParseTemplate(nil)
	require.NoError(t, err)
	require.Empty(t, tmpl.Body)
}

func TestParseTemplate_EmptyFrontmatter(t *testing.T) {
	t.Parallel()

	tmpl, err := ParseTemplate([]byte("---\n---\nBody content here."))
	require.NoError(t, err)
	require.Empty(t, tmpl.Metadata)
	require.Equal(t, "Body content here.", tmpl.Body)
}

func TestParseTemplate_CRLF(t *testing.T) {
	t.Parallel()

	tmpl, err := ParseTemplate([]byte("---\r\nSubject: Hi\r\n---\r\n<p>x</p>"))
	require.NoError(t, err)
	require.Equal(t, "<p>x</p>", tmpl.Body)

	subject, ok := tmpl.Subject()
	require.True(t, ok)
	require.Equal(t, "Hi", subject)
}

func TestParseTemplate_DashesInsideBodyAreNotFrontmatter(t *testing.T) {
	t.Parallel()

	content := []byte("<p>one</p>\n---\n<p>two</p>")
	tmpl, err := ParseTemplate(content)
	require.NoError(t, err)
	require.Equal(t, string(content), tmpl.Body)

	content = []byte("----- header -----\n<p>x</p>")
	tmpl, err = ParseTemplate(content)
	require.NoError(t, err)
	require.Equal(t, string(content), tmpl.Body)
}

func TestParseTemplate_DelimiterInsideFrontmatterValue(t *testing.T) {
	t.Parallel()

	tmpl, err := ParseTemplate([]byte("---\nsubject: a---b\n---\nbody"))
	require.NoError(t, err)
	require.Equal(t, "a---b", tmpl.Metadata["subject"])
	require.Equal(t, "body", tmpl.Body)
}

func TestParseTemplate_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing closing delimiter", func(t *testing.T) {
		t.Parallel()
		_, err := ParseTemplate([]byte("---\nsubject: x\n<p>body</p>"))
		require.ErrorIs(t, err, ErrInvalidFrontmatter)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()
		_, err := ParseTemplate([]byte("---\nsubject: [unclosed\n---\nbody"))
		require.ErrorIs(t, err, ErrInvalidFrontmatter)
	})
}

func TestTemplate_SubjectIgnoresBlankAndNonString(t *testing.T) {
	t.Parallel()

	_, ok := (&Template{Metadata: map[string]any{"subject": "   "}}).Subject()
	require.False(t, ok)

	_, ok = (&Template{Metadata: map[string]any{"subject": 42}}).Subject()
	require.False(t, ok)
}
