// Package internal provides the core implementation of luckymail.
//
// This package is internal and should not be used directly. Import
// "github.com/dmitrymomot/luckymail" instead, which re-exports the public API.
//
// # Send cycle
//
// App.Send runs one cycle:
//
//  1. Select: csvrow.Select picks one data row uniformly at random.
//     A missing or empty CSV file, or a header without data rows, ends the
//     cycle with (false, nil) and a warning log.
//  2. Render: the row is renamed through the variable map and substituted
//     into the template. Errors are returned.
//  3. Subject: WithSubject, then the template's frontmatter subject, then
//     DefaultSubject.
//  4. Dispatch: production sends through the configured mailer.Sender;
//     otherwise the HTML is written to the debug output file.
//
// Failures are wrapped in *StageError so callers can tell where a run failed
// while errors.Is still matches the package sentinels (csvrow.ErrReadFailed,
// mailer.ErrMissingPlaceholder, mailer.ErrSendFailed and so on).
//
// # Scheduling
//
// App.Schedule wraps Send in a cron loop (robfig/cron) that skips ticks
// while a send is still running and shuts down on SIGINT or SIGTERM:
//
//	err := app.Schedule(
//	    internal.Cron("@every 1h"),
//	    internal.RunNow(true),
//	    internal.ShutdownHook(flushLogs),
//	)
//
// Every send, manual or scheduled, logs under its own run_id.
package internal
