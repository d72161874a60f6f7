package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
)

type Config struct {
	ReloadInterval string           `json:"reload_interval"`
	Listeners      []ListenerConfig `json:"listeners"`
	Storage        StorageConfig    `json:"storage"`
	Nats           NatsConfig       `json:"nats"`
	Render         RenderConfig     `json:"render"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	if c.ReloadInterval != "" {
		d, err := time.ParseDuration(c.ReloadInterval)
		if err != nil {
			el.Add(fmt.Errorf("parsing reload_interval: %w", err))
		} else if d < time.Second {
			el.Add(fmt.Errorf("reload_interval must be at least 1 second"))
		}
	}

	for i, l := range c.Listeners {
		err := l.Validate()
		if err != nil {
			el.Add(fmt.Errorf("listener %d: %w", i, err))
		}
	}

	el.Add(c.Storage.Validate())
	el.Add(c.Nats.Validate())
	el.Add(c.Render.Validate())

	return el.Err()
}
