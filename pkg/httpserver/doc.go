// Package httpserver wraps net/http.Server with graceful shutdown and
// environment-driven configuration.
//
// Run blocks until the context is cancelled, an interrupt signal arrives, or
// the listener fails. On cancellation the server drains in-flight requests
// within the configured shutdown timeout.
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
package httpserver
