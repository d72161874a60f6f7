package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-phrase/internal/console"
	"github.com/pixil98/go-phrase/internal/driver"
	"github.com/pixil98/go-phrase/internal/listener"
	"github.com/pixil98/go-service/service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	// Load the message and pronoun assets
	library, reloads, err := cfg.Storage.BuildLibrary()
	if err != nil {
		return nil, fmt.Errorf("creating message library: %w", err)
	}

	// Create the embedded nats server
	natsServer, err := cfg.Nats.buildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}

	// Create the render service
	renderService := cfg.Render.BuildRenderService(natsServer, library)

	// Create listeners feeding interactive preview sessions
	cm := listener.NewConnectionManager(console.NewManager(library))
	listeners := make(service.WorkerList, len(cfg.Listeners))
	for i, l := range cfg.Listeners {
		lst, err := l.BuildListener(cm)
		if err != nil {
			return nil, fmt.Errorf("creating listener %d: %w", i, err)
		}
		listeners[fmt.Sprintf("listener-%d", i)] = lst
	}

	// Refresh assets from disk on a timer
	var opts []driver.DriverOpt
	if cfg.ReloadInterval != "" {
		d, err := time.ParseDuration(cfg.ReloadInterval)
		if err != nil {
			return nil, fmt.Errorf("parsing reload_interval: %w", err)
		}
		opts = append(opts, driver.WithTickLength(d))
	}
	drv := driver.NewDriver([]driver.Manager{reloads}, opts...)

	// Create a worker list
	return service.WorkerList{
		"nats":      natsServer,
		"render":    renderService,
		"driver":    drv,
		"listeners": &listeners,
	}, nil
}
