package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/BlumBot_Go/internal/registry"
	"github.com/osse101/BlumBot_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server   *server.Server
	Registry *registry.Registry
}

// GracefulShutdown stops the health server, then closes every transport still
// registered. Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDown)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Registry != nil {
		slog.Info(LogMsgClosingTransports, "open", components.Registry.Len())
		if err := components.Registry.CloseAll(); err != nil {
			slog.Error(LogMsgTransportsCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgShutdownComplete)
}
