// Package luckymail sends one randomly chosen CSV row as an HTML email.
//
// Each run reads a CSV file, picks one data row uniformly at random,
// substitutes its values into a template's {placeholder} tokens and either
// delivers the result through a mail provider (production mode) or writes it
// to a local debug file.
//
// # Quick Start
//
//	sent, err := luckymail.Send(ctx,
//	    luckymail.WithCSV("quotes.csv"),
//	    luckymail.WithTemplate("template.html"),
//	    luckymail.WithSender(luckymail.Identity{Email: "bot@example.com", Name: "Quote Bot"}),
//	    luckymail.WithRecipients(luckymail.Identity{Email: "me@example.com"}),
//	    luckymail.WithProduction(true),
//	    luckymail.WithMailSender(resendSender),
//	)
//
// sent is false with a nil error when the CSV file is missing or empty, or
// holds a header without data rows.
//
// # Templates
//
// Templates use flat {name} placeholders. {{ and }} produce literal braces so
// CSS blocks can be written inline. Values are inserted verbatim.
// A template may start with a YAML frontmatter block declaring a subject:
//
//	---
//	subject: A word from {author}
//	---
//	<p>{quote}</p>
//
// Templates ending in .md are converted from Markdown to HTML after
// substitution.
//
// # Column renaming
//
// WithVariableMap maps placeholder names to CSV column names:
//
//	luckymail.WithVariableMap(luckymail.VariableMap{
//	    "quote":  "Quote Text",
//	    "author": "Author Name",
//	})
//
// Only mapped placeholders are available once a map is set.
//
// # Scheduling
//
// App.Schedule sends one email per cron tick until SIGINT or SIGTERM:
//
//	err := luckymail.New(opts...).Schedule(
//	    luckymail.Cron("0 8 * * *"),
//	    luckymail.RunNow(true),
//	)
//
// # Providers
//
// Production delivery goes through a [Sender]. Implementations live under
// pkg/mailer: resend, mailersend, smtp and ses.
package luckymail
