// Package daemon wires the configuration, the notification hub and the modem
// transport into one supervised service.
package daemon

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/LeoCommon/modemcore/internal/config"
	"github.com/LeoCommon/modemcore/internal/hub"
	"github.com/LeoCommon/modemcore/internal/modem/hotplug"
	"github.com/LeoCommon/modemcore/internal/modem/sim7600"
	"github.com/LeoCommon/modemcore/internal/radio"
	"github.com/LeoCommon/modemcore/internal/registrant"
	"github.com/LeoCommon/modemcore/pkg/log"
	"github.com/LeoCommon/modemcore/pkg/systemd"
	"go.bug.st/serial"
	"go.uber.org/zap"
)

const (
	ModemRetryWait   = 5 * time.Second
	WatchdogInterval = 10 * time.Second
)

// App global app struct that contains all services
type App struct {
	// All go routines that should terminate when the application ends are registered here
	WG sync.WaitGroup

	Conf *config.Manager

	Hub     *hub.Hub
	Modem   *sim7600.Modem
	Hotplug *hotplug.Monitor

	// udev changes of the modem device, fed by the hotplug monitor
	changes   chan hotplug.Change
	openModem func() error
	retryWait time.Duration
}

func (a *App) loadConfiguration(configPath string, acceptEmptyConfig bool) error {
	// Create the new config manager and load the configuration
	a.Conf = config.NewManager()
	if err := a.Conf.Load(configPath, acceptEmptyConfig); err != nil {
		log.Error("an error occurred while trying to load the config file, trying default path", zap.String("path", configPath), zap.Error(err))
		if err = a.Conf.Load(config.DefaultConfigPath, acceptEmptyConfig); err != nil {
			return err
		}
	}

	return nil
}

func (a *App) initLogging(debugFlag bool) {
	lc := a.Conf.Log().C()

	// The cli flag wins over the file
	if debugFlag || lc.Level == "" {
		log.Init(debugFlag || lc.Debug)
		return
	}

	if err := log.InitLevel(lc.Level); err != nil {
		log.Init(lc.Debug)
		log.Error("invalid log level, using defaults", zap.Error(err))
	}
}

// reportStatus mirrors every radio transition into the systemd status line
func reportStatus(n registrant.Notification) {
	state, ok := n.Result.(radio.State)
	if !ok {
		return
	}

	if err := systemd.Status("radio " + state.String()); err != nil && !errors.Is(err, &systemd.NotAvailableError{}) {
		log.Debug("could not update systemd status", zap.Error(err))
	}
}

func Setup(flags config.CLIFlags, acceptEmptyConfig bool) (*App, error) {
	app := &App{
		changes:   make(chan hotplug.Change, 1),
		retryWait: ModemRetryWait,
	}

	// Log early problems with the flag level, the config may refine it later
	log.Init(flags.Debug)

	if err := app.loadConfiguration(flags.ConfigPath, acceptEmptyConfig); err != nil {
		return nil, err
	}
	app.initLogging(flags.Debug)

	log.Info("modemcore starting", zap.String("config", app.Conf.Path()))

	app.Hub = hub.New(app.Conf.Hub().C())
	app.Hub.Radio().RegisterForStateChanged(registrant.NewHandler(reportStatus), nil, nil)

	mc := app.Conf.Modem().C()
	app.Modem = sim7600.Create(mc.Device, &serial.Mode{BaudRate: mc.BaudRate}, mc.ReadTimeout.Value())
	app.openModem = app.Modem.Open

	if mc.Hotplug {
		// Without udev the modem is still polled with the retry interval
		monitor, err := hotplug.New(mc.Device)
		if err != nil {
			log.Warn("continuing without hotplug support", zap.Error(err))
		} else {
			app.Hotplug = monitor
		}
	}

	return app, nil
}

// Run keeps the modem attached to the hub until ctx is done. A modem that
// cannot be opened is retried, udev add events retry right away and remove
// events close the port so the radio becomes unavailable.
func (a *App) Run(ctx context.Context) error {
	if a.Hotplug != nil {
		a.WG.Add(1)
		go func() {
			defer a.WG.Done()
			if err := a.Hotplug.Run(ctx, a.changes); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("hotplug monitor stopped", zap.Error(err))
			}
		}()
	}

	watchdog := time.NewTicker(WatchdogInterval)
	defer watchdog.Stop()

	retry := time.NewTimer(0)
	defer retry.Stop()

	// Set while the modem is running
	var runDone chan error

	if err := systemd.Ready(); err != nil {
		log.Debug("not running under systemd notify", zap.Error(err))
	}

	for {
		select {
		case <-ctx.Done():
			// Closing unblocks a read that has no timeout
			_ = a.Modem.Close()
			if runDone != nil {
				<-runDone
			}
			a.WG.Wait()
			return nil

		case <-retry.C:
			if err := a.openModem(); err != nil {
				log.Warn("could not open modem, retrying", zap.String("device", a.Modem.Device()), zap.Duration("wait", a.retryWait))
				retry.Reset(a.retryWait)
				continue
			}

			log.Info("modem attached", zap.String("device", a.Modem.Device()))
			runDone = make(chan error, 1)
			go func(done chan<- error) {
				done <- a.Modem.Run(ctx, a.Hub)
			}(runDone)

		case err := <-runDone:
			runDone = nil
			_ = a.Modem.Close()
			if ctx.Err() != nil {
				continue
			}

			log.Warn("modem connection lost", zap.Error(err))
			retry.Reset(a.retryWait)

		case change := <-a.changes:
			switch change.Action {
			case hotplug.Removed:
				if runDone != nil {
					// Run reports the radio unavailable once the read fails
					_ = a.Modem.Close()
				}
			case hotplug.Added:
				if runDone == nil {
					retry.Reset(0)
				}
			}

		case <-watchdog.C:
			if err := systemd.EntertainWatchdog(); err != nil && !errors.Is(err, &systemd.NotAvailableError{}) {
				log.Warn("watchdog notification failed", zap.Error(err))
			}
		}
	}
}

func (a *App) Shutdown() {
	if err := systemd.Stopping(); err != nil {
		log.Debug("not running under systemd notify", zap.Error(err))
	}

	if a.Modem != nil {
		_ = a.Modem.Close()
	}

	if a.Hub != nil {
		a.Hub.Close()
	}

	log.Sync()
}
