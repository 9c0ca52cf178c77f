package commands

import (
	"context"
	"time"

	"github.com/de-tools/insure-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/insure-atlas/pkg/services/config"
	"github.com/de-tools/insure-atlas/pkg/store/provider"
)

// Env is what every command needs from the CLI: settings, data and an output.
type Env struct {
	Reporter     *export.Reporter
	Settings     func() (*config.Settings, error)
	OpenProvider func(ctx context.Context) (provider.Provider, func() error, error)
	Now          func() time.Time
}
