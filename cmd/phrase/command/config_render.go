package command

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-phrase/internal/message"
	"github.com/pixil98/go-phrase/internal/render"
)

const defaultSubjectPrefix = "phrase"

type RenderConfig struct {
	SubjectPrefix string `json:"subject_prefix"`
}

func (c *RenderConfig) Validate() error {
	el := errors.NewErrorList()

	// Wildcards or spaces in the prefix would produce subjects that nats
	// rejects or that capture more than intended.
	if strings.ContainsAny(c.SubjectPrefix, " \t*>") {
		el.Add(fmt.Errorf("subject_prefix must not contain spaces or wildcards"))
	}

	return el.Err()
}

func (c *RenderConfig) BuildRenderService(bus render.Bus, library *message.Library) *render.Service {
	prefix := c.SubjectPrefix
	if prefix == "" {
		prefix = defaultSubjectPrefix
	}

	return render.NewService(bus, library, prefix)
}
