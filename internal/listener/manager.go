package listener

import (
	"context"
	"io"
	"log/slog"

	"github.com/pixil98/go-phrase/internal/console"
)

type ConnectionManager struct {
	cm *console.Manager
}

func NewConnectionManager(cm *console.Manager) *ConnectionManager {
	return &ConnectionManager{
		cm: cm,
	}
}

func (m *ConnectionManager) AcceptConnection(ctx context.Context, conn io.ReadWriter) {
	if err := m.cm.RunSession(ctx, conn); err != nil {
		slog.WarnContext(ctx, "console session", "error", err)
	}
}
