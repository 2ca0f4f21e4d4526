// Package state tracks the active theme selection: which color theme is
// in use and whether dark mode is on. The holder keeps three places in
// sync: its in-memory record, the persisted preference store, and the
// class markers the page shell renders.
package state

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

// Preference keys and dark-mode values as persisted in the store.
const (
	KeyColorTheme = "color_theme"
	KeyDarkMode   = "dark_mode"

	DarkValue  = "dark"
	LightValue = "light"
)

// DefaultTheme is the color theme used when nothing is persisted.
const DefaultTheme = "default"

// sanitizePattern strips anything that could leak markup or styling
// through a theme class name.
var sanitizePattern = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// State is the two-field selection record. It is always handed out by
// value, so callers cannot mutate the holder through it.
type State struct {
	ColorTheme string `json:"color_theme"`
	DarkMode   bool   `json:"dark_mode"`
}

// Markers are the class markers the page root carries. The two concerns
// never collide: toggling dark mode leaves the theme class untouched and
// vice versa.
type Markers struct {
	ThemeClass string // "theme-<id>"
	Dark       bool   // the "theme-dark" class is present
}

// Classes returns the marker classes in render order.
func (m Markers) Classes() []string {
	classes := []string{m.ThemeClass}
	if m.Dark {
		classes = append(classes, "theme-dark")
	}
	return classes
}

// Store is the persistence capability for the two selection strings.
// Implementations return errors as values; the holder treats any failure
// as "memory-only for this session" rather than propagating it.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// MarkerSink receives the class markers after every effective mutation.
type MarkerSink interface {
	Apply(markers Markers)
}

// Listener is notified synchronously with a copy of the new state after
// every effective mutation. Ordering between listeners is unspecified.
type Listener func(State)

// Holder owns the active theme selection. Construct exactly one per
// process in the bootstrap path and pass it by handle; it is confined to
// a single goroutine, which is what makes the serial read-modify-write
// of its three mirrors safe without locking.
type Holder struct {
	logger    zerolog.Logger
	store     Store
	sink      MarkerSink
	ambient   func() bool
	state     State
	listeners []Listener
}

// Option configures a Holder.
type Option func(*Holder)

// WithStore sets the persistence capability. Without one the holder is
// memory-only.
func WithStore(store Store) Option {
	return func(h *Holder) { h.store = store }
}

// WithMarkerSink sets where class markers are pushed.
func WithMarkerSink(sink MarkerSink) Option {
	return func(h *Holder) { h.sink = sink }
}

// WithAmbientDark supplies the environment's dark/light preference,
// consulted only when no dark-mode value is persisted.
func WithAmbientDark(ambient func() bool) Option {
	return func(h *Holder) { h.ambient = ambient }
}

// New constructs a holder and restores its state. Initialization is
// persisted-first: stored values win, the ambient signal fills a missing
// dark-mode value, and the resulting markers are pushed immediately so
// the page never renders with stale classes.
func New(logger zerolog.Logger, opts ...Option) *Holder {
	h := &Holder{
		logger: logger,
		state:  State{ColorTheme: DefaultTheme},
	}

	for _, opt := range opts {
		opt(h)
	}

	h.restore()
	h.pushMarkers()
	return h
}

// restore reads the persisted selection. Store failures leave the
// defaults in place and log, never fail construction.
func (h *Holder) restore() {
	darkPersisted := false

	if h.store != nil {
		if value, ok, err := h.store.Get(KeyColorTheme); err != nil {
			h.logger.Warn().Err(err).Msg("preference store unavailable; using default theme")
		} else if ok {
			if sanitized := Sanitize(value); sanitized != "" {
				h.state.ColorTheme = sanitized
			}
		}

		if value, ok, err := h.store.Get(KeyDarkMode); err != nil {
			h.logger.Warn().Err(err).Msg("preference store unavailable; using default dark mode")
		} else if ok {
			h.state.DarkMode = value == DarkValue
			darkPersisted = true
		}
	}

	if !darkPersisted && h.ambient != nil {
		h.state.DarkMode = h.ambient()
	}
}

// State returns a copy of the current selection.
func (h *Holder) State() State {
	return h.state
}

// Markers returns the class markers for the current selection.
func (h *Holder) Markers() Markers {
	return Markers{
		ThemeClass: "theme-" + h.state.ColorTheme,
		Dark:       h.state.DarkMode,
	}
}

// Subscribe registers a change listener.
func (h *Holder) Subscribe(l Listener) {
	if l == nil {
		return
	}
	h.listeners = append(h.listeners, l)
}

// SetColorTheme switches the active color theme. Empty input is rejected
// with a warning; anything outside [A-Za-z0-9_-] is stripped before use.
// Setting the current theme again is a no-op and fires no notification.
func (h *Holder) SetColorTheme(id string) {
	if strings.TrimSpace(id) == "" {
		h.logger.Warn().Msg("rejecting empty color theme id")
		return
	}

	sanitized := Sanitize(id)
	if sanitized == "" {
		h.logger.Warn().Str("id", id).Msg("rejecting color theme id with no usable characters")
		return
	}
	if sanitized != id {
		h.logger.Warn().Str("id", id).Str("sanitized", sanitized).Msg("stripped unsafe characters from color theme id")
	}

	if sanitized == h.state.ColorTheme {
		return
	}

	h.state.ColorTheme = sanitized
	h.pushMarkers()
	h.persist(KeyColorTheme, sanitized)
	h.notify()
}

// SetDarkMode sets the dark-mode flag. Setting the current value again
// is a no-op and fires no notification.
func (h *Holder) SetDarkMode(dark bool) {
	if dark == h.state.DarkMode {
		return
	}

	h.state.DarkMode = dark
	h.pushMarkers()
	h.persist(KeyDarkMode, darkModeValue(dark))
	h.notify()
}

// ToggleDarkMode flips dark mode and returns the new value.
func (h *Holder) ToggleDarkMode() bool {
	h.SetDarkMode(!h.state.DarkMode)
	return h.state.DarkMode
}

func (h *Holder) pushMarkers() {
	if h.sink != nil {
		h.sink.Apply(h.Markers())
	}
}

// persist writes one preference. Storage being unavailable degrades to
// memory-only state; the in-memory record stays authoritative.
func (h *Holder) persist(key, value string) {
	if h.store == nil {
		return
	}
	if err := h.store.Set(key, value); err != nil {
		h.logger.Warn().Err(err).Str("key", key).Msg("preference store unavailable; state is memory-only")
	}
}

func (h *Holder) notify() {
	snapshot := h.state
	for _, l := range h.listeners {
		l(snapshot)
	}
}

// Sanitize reduces a theme id to its CSS-class-safe characters.
func Sanitize(id string) string {
	return sanitizePattern.ReplaceAllString(id, "")
}

func darkModeValue(dark bool) string {
	if dark {
		return DarkValue
	}
	return LightValue
}
