// Package logger builds *slog.Logger values with functional options and a set
// of attribute helpers so that session code logs the same keys everywhere.
//
// New picks a JSON or text handler, applies static attributes and wraps the
// handler with LogHandlerDecorator, which runs ContextExtractor callbacks on
// every record (the request id extractor from pkg/requestid is the typical
// one). WithEnvironment selects a preset: text at DEBUG for development, JSON
// at INFO for staging and production.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment(os.Getenv("APP_ENV"), "sessiond"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.DebugContext(ctx, "session token rejected",
//		logger.TokenName("X-Token"),
//		logger.Error(err),
//	)
//
// Helpers such as Error, Subject and TokenID return an empty slog.Attr for
// empty input, which slog drops, so call sites need no nil checks.
//
// NewNop returns a logger that discards everything; packages fall back to it
// when no logger is configured.
package logger
