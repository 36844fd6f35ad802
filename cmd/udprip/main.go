// Command udprip runs one UDPRIP router: a virtual distance-vector
// routing daemon speaking JSON over UDP/55151, configured entirely
// from flags (no hidden defaults, per router.Config's doc comment).
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"udprip"
	"udprip/logger"
	"udprip/util"
)

var (
	flagAddr      string
	flagPeriod    time.Duration
	flagStartup   string
	flagDebugAddr string
	flagVerbose   bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "udprip",
		Short: "Virtual distance-vector router over UDP",
		RunE:  runRouter,
	}
	cmd.Flags().StringVar(&flagAddr, "addr", "", "router's own address in the 127.0.1.0/24 range (required)")
	cmd.Flags().DurationVar(&flagPeriod, "period", 5*time.Second, "advertisement period P")
	cmd.Flags().StringVar(&flagStartup, "startup", "", "file of add/del/trace commands to run before reading stdin")
	cmd.Flags().StringVar(&flagDebugAddr, "debug-addr", "", "host:port to serve GET /debug/state on (disabled if empty)")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "log at debug level instead of info level")
	cmd.MarkFlagRequired("addr")
	return cmd
}

func runRouter(cmd *cobra.Command, args []string) error {
	if _, err := util.ValidateRouterAddress(flagAddr); err != nil {
		return fmt.Errorf("--addr: %w", err)
	}

	level := slog.LevelInfo
	if flagVerbose {
		level = slog.LevelDebug
	}
	log := logger.New(level)

	r, err := udprip.New(udprip.Config{
		Address:   flagAddr,
		Period:    flagPeriod,
		DebugAddr: flagDebugAddr,
		Output:    os.Stdout,
	}, log)
	if err != nil {
		return err
	}
	if err := r.Bind(); err != nil {
		return fmt.Errorf("bind: %w", err)
	}
	defer r.Close()
	log.Infof("router bound on %s, period=%s", r.Addr(), flagPeriod)

	if flagStartup != "" {
		f, err := os.Open(flagStartup)
		if err != nil {
			return fmt.Errorf("startup file: %w", err)
		}
		err = r.LoadStartupFile(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("startup file: %w", err)
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return r.Run(ctx, os.Stdin)
}
