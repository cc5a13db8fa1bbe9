// Package logger builds the process logger on top of log/slog.
//
// A logger is configured from Config (level, json or text format) and can
// fan records out to Sentry when a DSN is set:
//
//	log, err := logger.New(logger.Config{Level: "info", Format: "json"}, logger.RunIDExtractor())
//	if err != nil {
//		return err
//	}
//	defer logger.Flush(2 * time.Second)
//
// Context extractors add attributes taken from the context to every record.
// RunIDExtractor tags all records of one send with the same run_id:
//
//	ctx, _ = logger.WithRunID(ctx)
//	log.InfoContext(ctx, "row selected")
//	// {"level":"INFO","msg":"row selected","run_id":"5f0c..."}
//
// Without a DSN, or when Sentry fails to initialize, records go to the
// configured output only. Errors create Sentry issues; warnings are kept as
// Sentry logs unless MinLevel is "error".
package logger
