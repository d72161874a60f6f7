package console

import (
	"context"
	"errors"
	"io"

	"github.com/pixil98/go-phrase/internal/message"
)

// Manager runs interactive preview sessions over incoming connections.
// Each session walks the operator through picking a message, describing
// the beings involved, and seeing the message rendered for every audience.
type Manager struct {
	library  *message.Library
	renderer *message.Renderer
}

func NewManager(library *message.Library) *Manager {
	return &Manager{
		library:  library,
		renderer: message.NewRenderer(library),
	}
}

func (m *Manager) RunSession(ctx context.Context, conn io.ReadWriter) error {
	t := NewTerm(conn)

	if err := t.Printf("phrase preview console\n\n"); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		again, err := m.preview(t)
		if err != nil {
			// A dropped connection ends the session, not the server
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if !again {
			return t.Printf("goodbye\n")
		}
	}
}
