package logging

import (
	"context"

	"github.com/goliatone/go-localeroute/pkg/interfaces"
)

const (
	rootModule      = "localeroute"
	routingModule   = "localeroute.routing"
	permalinkModule = "localeroute.permalink"
	contentModule   = "localeroute.content"
	cliModule       = "localeroute.cli"
)

// ModuleLogger returns the provider's logger for module tagged with a
// "module" field. A nil provider yields NoOp.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	var logger interfaces.Logger = noopLogger{}
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}
	return WithFields(logger, map[string]any{"module": module})
}

// RoutingLogger returns the logger used by locale detection and path building.
func RoutingLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, routingModule)
}

// PermalinkLogger returns the logger used when building absolute URLs.
func PermalinkLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, permalinkModule)
}

// ContentLogger returns the logger used by the post loader.
func ContentLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, contentModule)
}

// CLILogger returns the logger used by command line tools.
func CLILogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, cliModule)
}

// NoOp returns a logger that drops every entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.FieldsLogger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger { return n }

func (n noopLogger) WithContext(context.Context) interfaces.Logger { return n }
