package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/LeoCommon/modemcore/internal/config"
	"github.com/LeoCommon/modemcore/internal/daemon"
	"github.com/LeoCommon/modemcore/pkg/log"
	"go.uber.org/zap"
)

func main() {
	flags := config.ParseCLIFlags()

	app, err := daemon.Setup(flags, false)
	if err != nil || app == nil {
		fmt.Printf("Initialization failed, error: %s\n", err)
		os.Exit(1)
	}

	// Register a quit signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	EXIT_CODE := 0
	if err := app.Run(ctx); err != nil {
		log.Error("modem supervision failed", zap.Error(err))
		EXIT_CODE = 1
	}
	stop()

	log.Info("exit signal received - shutting down")
	app.Shutdown()

	os.Exit(EXIT_CODE)
}
