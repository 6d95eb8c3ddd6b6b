// Package httpserver runs an http.Handler with sane timeouts and graceful
// shutdown.
//
// Run blocks until the passed context is cancelled or the process receives
// SIGINT/SIGTERM, then calls http.Server.Shutdown bounded by the shutdown
// timeout. Start and stop hooks receive the server's logger.
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server", logger.Error(err))
//	}
//
// HealthCheckHandler provides liveness ("ALIVE") and readiness ("READY" /
// "NOT_READY") probes.
package httpserver
