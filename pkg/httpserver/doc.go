// Package httpserver runs an http.Handler with configured timeouts and a
// graceful stop on context cancellation, SIGINT or SIGTERM.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Liveness and Readiness return health endpoint handlers. Readiness runs named
// checks, such as a Redis ping, under a shared timeout and answers 503 when
// any of them fails.
//
// Run wraps listen and serve errors with ErrStart and Shutdown wraps drain
// errors with ErrShutdown.
package httpserver
