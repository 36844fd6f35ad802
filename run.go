package udprip

import (
	"context"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"udprip/wire"
)

// Run starts every long-lived goroutine named in spec.md §5 — the UDP
// reader, the owning event loop, the operator command loop reading
// stdin, and (if configured) the debug HTTP server — under a single
// errgroup.Group, as described in SPEC_FULL.md §5. It blocks until ctx
// is canceled, stdin reaches EOF, the operator types `quit`, or one of
// the goroutines errors out; whichever happens first unwinds the rest
// and Run returns the first non-nil error.
func (r *Router) Run(ctx context.Context, stdin io.Reader) error {
	if r.conn == nil {
		if err := r.Bind(); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		<-ctx.Done()
		r.conn.Close()
		return nil
	})

	eg.Go(func() error {
		wire.ReadLoop(r.conn, r.packets, ctx.Done(), r.log)
		return nil
	})

	eg.Go(func() error {
		r.loop(ctx)
		return nil
	})

	eg.Go(func() error {
		r.OperatorLoop(stdin, cancel)
		return nil
	})

	if r.cfg.DebugAddr != "" {
		eg.Go(func() error {
			return r.serveDebug(ctx, r.cfg.DebugAddr)
		})
	}

	return eg.Wait()
}

// loop is the single goroutine that owns r.table and r.neighbors. Every
// case below runs to completion before the next select iteration begins,
// which is the "single critical section" spec.md §5 requires.
func (r *Router) loop(ctx context.Context) {
	advertiseTicker := time.NewTicker(r.cfg.Period)
	defer advertiseTicker.Stop()
	livenessTicker := time.NewTicker(r.cfg.Period)
	defer livenessTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case p := <-r.packets:
			r.handlePacket(p)

		case cmd := <-r.commands:
			r.handleCommand(cmd)

		case reply := <-r.stateReq:
			reply <- stateSnapshot{
				routes:    r.table.All(),
				neighbors: r.neighbors.All(),
			}

		case <-advertiseTicker.C:
			if r.neighbors.Len() > 0 {
				r.advertiseAll()
			}

		case <-livenessTicker.C:
			r.checkLiveness()
		}
	}
}
