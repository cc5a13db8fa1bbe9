// Package sanitizer provides named bluemonday policies for rendered email bodies.
package sanitizer

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Policy names accepted by Policy.
const (
	PolicyNone   = "none"
	PolicyStrict = "strict"
	PolicySafe   = "safe"
	PolicyUGC    = "ugc"
	PolicyEmail  = "email"
)

// ErrUnknownPolicy is returned by Policy for an unsupported name.
var ErrUnknownPolicy = errors.New("sanitizer: unknown policy")

var (
	policies map[string]*bluemonday.Policy
	initOnce sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		// strips all HTML, leaving plain text
		strict := bluemonday.StrictPolicy()

		safe := bluemonday.NewPolicy()
		safe.AllowStandardURLs()
		safe.AllowElements(
			"p", "br",
			"strong", "b", "em", "i",
			"ul", "ol", "li",
			"code", "pre", "blockquote",
		)
		safe.AllowAttrs("href").OnElements("a")
		safe.RequireNoFollowOnLinks(true)

		// UGC plus the table layout attributes email clients rely on
		email := bluemonday.UGCPolicy()
		email.AllowElements("center", "font")
		email.AllowAttrs("align", "valign", "bgcolor", "width", "height").Globally()
		email.AllowAttrs("border", "cellpadding", "cellspacing").OnElements("table")
		email.AllowAttrs("color", "face", "size").OnElements("font")

		policies = map[string]*bluemonday.Policy{
			PolicyStrict: strict,
			PolicySafe:   safe,
			PolicyUGC:    bluemonday.UGCPolicy(),
			PolicyEmail:  email,
		}
	})
}

// Policy returns the sanitizing function for name.
// An empty name or "none" returns nil, meaning no sanitization.
func Policy(name string) (func(string) string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == PolicyNone {
		return nil, nil
	}

	initPolicies()
	p, ok := policies[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
	return p.Sanitize, nil
}
