package golondon

import (
	"time"

	"github.com/go-london/golondon/config"
	"github.com/go-london/golondon/linestatus"
	"github.com/go-london/golondon/prefs"
	"github.com/go-london/golondon/stoppoint"
	"github.com/go-london/golondon/tfl"
)

// App wires the TfL client, the services and the preference store together.
// Everything is constructed explicitly; nothing is a process-wide singleton.
type App struct {
	cfg   config.AppConfig
	Stops *stoppoint.Service
	Lines *linestatus.Service
	Prefs *prefs.Store

	statusCache *Cache[[]tfl.Line]
}

// NewApp builds the application from its configuration.
func NewApp(cfg config.AppConfig) (*App, error) {
	client := tfl.NewClient(
		cfg.TfL.BaseURL,
		cfg.TfL.AppID,
		cfg.TfL.AppKey,
		time.Duration(cfg.TfL.TimeoutMS)*time.Millisecond,
	)
	store, err := prefs.Open(cfg.Prefs.Path)
	if err != nil {
		return nil, err
	}
	ttl := time.Duration(cfg.Cache.StatusTTLSeconds) * time.Second
	return &App{
		cfg:         cfg,
		Stops:       stoppoint.NewService(client),
		Lines:       linestatus.NewService(client),
		Prefs:       store,
		statusCache: NewCache[[]tfl.Line](ttl),
	}, nil
}

// Close releases the app's resources.
func (a *App) Close() error {
	a.statusCache.Close()
	return a.Prefs.Close()
}
