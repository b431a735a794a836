package theme

import (
	"github.com/alexisbeaulieu97/relax/internal/logger"
	"github.com/alexisbeaulieu97/relax/internal/metrics"
)

// Attributes is the root-level styling state the view reads.
type Attributes struct {
	// DataTheme is always set once a preference has been loaded.
	DataTheme Mode
	Icon      string
	// Override is set when a third party controls coloring.
	Override bool
}

// Options configures a Controller.
type Options struct {
	Store    Store
	System   Detector
	Override OverrideDetector
	Logger   *logger.Logger
	Metrics  *metrics.Metrics
}

// Controller reconciles the saved preference with the environment and
// toggles it.
type Controller struct {
	store    Store
	system   Detector
	override OverrideDetector
	log      *logger.Logger
	metrics  *metrics.Metrics
	attrs    Attributes
}

// NewController builds a Controller. A nil Store keeps the preference in
// memory only.
func NewController(opts Options) *Controller {
	store := opts.Store
	if store == nil {
		store = &MemoryStore{}
	}
	system := opts.System
	if system == nil {
		system = func() (Mode, bool) { return "", false }
	}
	override := opts.Override
	if override == nil {
		override = func() bool { return false }
	}
	return &Controller{
		store:    store,
		system:   system,
		override: override,
		log:      opts.Logger.Component("theme"),
		metrics:  opts.Metrics,
	}
}

// LoadPreference applies the saved mode, else the system mode, else light.
func (c *Controller) LoadPreference() Mode {
	mode, source := c.resolve()
	c.apply(mode)
	c.log.WithFields(map[string]any{"theme": mode.String(), "source": source}).Debug("theme loaded")
	return mode
}

func (c *Controller) resolve() (Mode, string) {
	saved, ok, err := c.store.Load()
	if err != nil {
		c.log.Error(err, "ignoring unreadable theme preference")
	}
	if ok {
		return saved, "saved"
	}
	if mode, ok := c.system(); ok {
		return mode, "system"
	}
	return Light, "default"
}

// Toggle flips the mode, updates the attributes and persists the result. The
// visual change stands even when persisting fails.
func (c *Controller) Toggle() (Mode, error) {
	current := c.attrs.DataTheme
	if current == "" {
		current = c.LoadPreference()
	}

	next := current.Opposite()
	c.apply(next)
	c.metrics.ThemeToggled()
	c.log.With("theme", next.String()).Info("theme toggled")

	if err := c.store.Save(next); err != nil {
		c.log.Error(err, "failed to persist theme")
		return next, err
	}
	return next, nil
}

// DetectThirdPartyOverride records whether a third party has taken over
// coloring. The saved preference is left untouched.
func (c *Controller) DetectThirdPartyOverride() bool {
	c.attrs.Override = c.override()
	if c.attrs.Override {
		c.log.Debug("color override detected")
	}
	return c.attrs.Override
}

// Mode is the applied mode; empty before LoadPreference.
func (c *Controller) Mode() Mode {
	return c.attrs.DataTheme
}

// Attributes returns a copy of the root attributes.
func (c *Controller) Attributes() Attributes {
	return c.attrs
}

func (c *Controller) apply(mode Mode) {
	c.attrs.DataTheme = mode
	c.attrs.Icon = mode.Icon()
}
