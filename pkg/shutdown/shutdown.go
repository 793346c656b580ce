package shutdown

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
)

// WithSignals returns a context cancelled on SIGINT or SIGTERM.
func WithSignals(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// Process is a long-running server. Serve blocks until the process stops;
// Stop asks it to stop gracefully within ctx.
type Process struct {
	Name  string
	Serve func() error
	Stop  func(ctx context.Context) error
}

// Run serves every process until ctx is cancelled or one of them fails,
// then stops them all, giving each at most grace to finish.
func Run(ctx context.Context, log *slog.Logger, grace time.Duration, procs ...Process) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, p := range procs {
		g.Go(func() error {
			log.Info("starting", slog.String("process", p.Name))
			if err := p.Serve(); err != nil {
				log.Error("serve error", slog.String("process", p.Name), slog.Any("err", err))
				return err
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown requested")

		stopCtx, cancel := context.WithTimeout(context.Background(), grace)
		defer cancel()

		var errs []error
		for _, p := range procs {
			if err := p.Stop(stopCtx); err != nil {
				log.Warn("stop error", slog.String("process", p.Name), slog.Any("err", err))
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})

	err := g.Wait()
	log.Info("bye")
	return err
}
