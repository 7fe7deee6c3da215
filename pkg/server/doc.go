/*
Package server runs the workshop HTTP app.

A Server binds one TCP listener (port 3000 unless configured otherwise),
answers GET / with the workshop greeting and logs a single line with its URL
once bound. Cancelling the context passed to Serve drains in-flight requests
and stops the listener.

	srv := server.New(config.Default(), server.WithLogger(logger))
	if err := srv.Run(ctx); err != nil {
		log.Fatal(err)
	}

An optional Prometheus listener runs next to the application listener when
config.Server.MetricsAddr is set and a handler is given with WithMetricsHandler.
*/
package server
