package servers

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/tmconfigs"
	"golang.org/x/net/netutil"
)

// Serve listens until ctx is done, then shuts down gracefully.
type Serve func(ctx context.Context) error

func (Module) Serve(
	handler Handler,
	addr tmconfigs.ListenAddr,
	maxConns tmconfigs.MaxConnections,
	logger logs.Logger,
) Serve {
	return func(ctx context.Context) error {
		var lc net.ListenConfig
		ln, err := lc.Listen(ctx, "tcp", string(addr))
		if err != nil {
			return err
		}
		ln = netutil.LimitListener(ln, int(maxConns))

		server := &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
			BaseContext: func(net.Listener) context.Context {
				return ctx
			},
		}

		errCh := make(chan error, 1)
		go func() {
			errCh <- server.Serve(ln)
		}()
		logger.InfoContext(ctx, "serving",
			"addr", ln.Addr().String(),
			"max_connections", int(maxConns),
		)

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
