// Package logger builds *slog.Logger instances with functional options and
// injects request-scoped values from context.Context into every record.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// result in a ContextHandler that runs ContextExtractor callbacks on each
// call. Environment presets (WithDevelopment, WithStaging, WithProduction)
// choose sensible level and format defaults; NewFromConfig drives the same
// choices from environment variables.
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "memberkit"),
//	    logger.WithContextExtractors(requestid.Extractor),
//	)
//	log.InfoContext(ctx, "enrollment step validated",
//	    logger.Step("personal"),
//	    logger.ErrorCount(0),
//	)
//
// The attribute helpers in attr.go keep key names consistent across
// packages. Aadhaar masks its value so that identity numbers never reach the
// log sink in full.
package logger
