package mailer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Substitute replaces every {name} placeholder in text with its value from ctx.
// "{{" and "}}" produce literal braces. A placeholder name consists of
// letters, digits, '_' and '-'.
//
// Either every placeholder resolves or nothing is returned: an unknown name
// fails with ErrMissingPlaceholder, unbalanced braces or an invalid name with
// ErrMalformedTemplate.
func Substitute(text string, ctx Context) (string, error) {
	return scan(text, func(name string) (string, error) {
		value, ok := ctx[name]
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrMissingPlaceholder, name)
		}
		return value, nil
	})
}

// scan walks text once, copying literal runs and replacing each placeholder
// with the value returned by resolve.
func scan(text string, resolve func(name string) (string, error)) (string, error) {
	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(text); {
		switch text[i] {
		case '{':
			if i+1 < len(text) && text[i+1] == '{' {
				b.WriteByte('{')
				i += 2
				continue
			}

			end := strings.IndexAny(text[i+1:], "{}")
			if end < 0 || text[i+1+end] != '}' {
				return "", fmt.Errorf("%w: unterminated placeholder at offset %d", ErrMalformedTemplate, i)
			}

			name := text[i+1 : i+1+end]
			if !validName(name) {
				return "", fmt.Errorf("%w: invalid placeholder name %q at offset %d", ErrMalformedTemplate, name, i)
			}

			value, err := resolve(name)
			if err != nil {
				return "", err
			}
			b.WriteString(value)
			i += end + 2
		case '}':
			if i+1 < len(text) && text[i+1] == '}' {
				b.WriteByte('}')
				i += 2
				continue
			}
			return "", fmt.Errorf("%w: single '}' at offset %d", ErrMalformedTemplate, i)
		default:
			next := strings.IndexAny(text[i:], "{}")
			if next < 0 {
				b.WriteString(text[i:])
				i = len(text)
				continue
			}
			b.WriteString(text[i : i+next])
			i += next
		}
	}

	return b.String(), nil
}

func validName(name string) bool {
	if name == "" {
		return false
	}
	for len(name) > 0 {
		r, size := utf8.DecodeRuneInString(name)
		if r != '_' && r != '-' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
		name = name[size:]
	}
	return true
}
