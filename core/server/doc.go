// Package server provides an HTTP server wrapper with graceful shutdown and
// environment-driven configuration.
//
// The Run method integrates with errgroup-managed lifecycles:
//
//	var cfg server.Config
//	config.MustLoad(&cfg)
//
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, r))
//	return g.Wait()
package server
