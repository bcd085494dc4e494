// Package hotplug watches udev for the modem's tty appearing and vanishing
package hotplug

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/DiscoResearchSat/go-udev/netlink"
	"github.com/LeoCommon/modemcore/pkg/log"
	"go.uber.org/zap"
)

type Action int

const (
	Added Action = iota
	Removed
)

func (a Action) String() string {
	if a == Added {
		return "added"
	}
	return "removed"
}

// Change reports the watched device node coming or going
type Change struct {
	Action  Action
	DevName string
}

type Monitor struct {
	device string
	udev   *netlink.UEventConn
}

// New connects to the udev event socket
func New(device string) (*Monitor, error) {
	m := &Monitor{
		device: device,
		udev:   new(netlink.UEventConn),
	}

	if err := m.udev.Connect(netlink.UdevEvent); err != nil {
		log.Error("could not connect to udev, hotplug support not available", zap.Error(err))
		return nil, err
	}

	return m, nil
}

func matcher() netlink.Matcher {
	// ADD OR REMOVE
	matchRule := fmt.Sprintf("^(%s|%s)$", netlink.ADD, netlink.REMOVE)
	return &netlink.RuleDefinitions{
		Rules: []netlink.RuleDefinition{
			{
				// Only tty nodes, the modem's management port is one of them
				Action: &matchRule,
				Env: map[string]string{
					"SUBSYSTEM": "^tty$",
				},
			},
		},
	}
}

// Classify checks whether ev concerns device, either by node name or by one of its symlinks
func Classify(ev netlink.UEvent, device string) (Change, bool) {
	var action Action
	switch ev.Action {
	case netlink.ADD:
		action = Added
	case netlink.REMOVE:
		action = Removed
	default:
		return Change{}, false
	}

	devName := ev.Env["DEVNAME"]
	if devName == "" {
		return Change{}, false
	}

	// Kernel events carry the bare node name
	if !strings.HasPrefix(devName, "/") {
		devName = path.Join("/dev", devName)
	}

	if devName == device {
		return Change{Action: action, DevName: devName}, true
	}

	for _, link := range strings.Fields(ev.Env["DEVLINKS"]) {
		if link == device {
			return Change{Action: action, DevName: devName}, true
		}
	}

	return Change{}, false
}

// Run forwards changes of the watched device until ctx is done or the socket fails.
// The udev connection is closed when Run returns.
func (m *Monitor) Run(ctx context.Context, changes chan<- Change) error {
	defer m.udev.Close()

	// The monitor sends its final error before closing the queue
	errs := make(chan error, 1)
	queue := m.udev.Monitor(ctx, errs, matcher())
	if queue == nil {
		return <-errs
	}

	log.Info("watching udev for modem changes", zap.String("device", m.device))

	var lastErr error
	for {
		select {
		case uevent, ok := <-queue:
			if !ok {
				select {
				case lastErr = <-errs:
				default:
				}

				log.Info("stopped observing udev events")
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return lastErr
			}

			change, match := Classify(uevent, m.device)
			if !match {
				continue
			}

			log.Info("modem device changed", zap.Stringer("action", change.Action), zap.String("devname", change.DevName))
			select {
			case changes <- change:
			case <-ctx.Done():
			}

		case err := <-errs:
			if ctx.Err() == nil {
				log.Error("udev monitor encountered an error", zap.Error(err))
			}
			lastErr = err
		}
	}
}
