package state

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	values map[string]string
	getErr error
	setErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{values: make(map[string]string)}
}

func (s *memoryStore) Get(key string) (string, bool, error) {
	if s.getErr != nil {
		return "", false, s.getErr
	}
	value, ok := s.values[key]
	return value, ok, nil
}

func (s *memoryStore) Set(key, value string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.values[key] = value
	return nil
}

type markerRecorder struct {
	applied []Markers
}

func (r *markerRecorder) Apply(markers Markers) {
	r.applied = append(r.applied, markers)
}

func (r *markerRecorder) last() Markers {
	return r.applied[len(r.applied)-1]
}

func TestNewDefaults(t *testing.T) {
	h := New(zerolog.Nop())

	require.Equal(t, State{ColorTheme: DefaultTheme, DarkMode: false}, h.State())
	require.Equal(t, []string{"theme-default"}, h.Markers().Classes())
}

func TestNewRestoresFromStore(t *testing.T) {
	store := newMemoryStore()
	store.values[KeyColorTheme] = "aurora"
	store.values[KeyDarkMode] = DarkValue

	sink := &markerRecorder{}
	h := New(zerolog.Nop(), WithStore(store), WithMarkerSink(sink))

	require.Equal(t, State{ColorTheme: "aurora", DarkMode: true}, h.State())
	require.NotEmpty(t, sink.applied, "markers must be pushed during construction")
	require.Equal(t, Markers{ThemeClass: "theme-aurora", Dark: true}, sink.last())
}

func TestAmbientOnlyWhenNothingPersisted(t *testing.T) {
	ambientDark := func() bool { return true }

	h := New(zerolog.Nop(), WithAmbientDark(ambientDark))
	require.True(t, h.State().DarkMode, "ambient signal should apply with no store")

	store := newMemoryStore()
	store.values[KeyDarkMode] = LightValue
	h = New(zerolog.Nop(), WithStore(store), WithAmbientDark(ambientDark))
	require.False(t, h.State().DarkMode, "persisted value must win over the ambient signal")
}

func TestSetDarkModeNoOpOnUnchanged(t *testing.T) {
	h := New(zerolog.Nop())

	fired := 0
	h.Subscribe(func(State) { fired++ })

	h.SetDarkMode(false)
	require.Equal(t, 0, fired, "setting the current value must not notify")

	h.SetDarkMode(true)
	require.Equal(t, 1, fired, "an effective change must notify exactly once")
}

func TestToggleDarkMode(t *testing.T) {
	store := newMemoryStore()
	h := New(zerolog.Nop(), WithStore(store))

	require.True(t, h.ToggleDarkMode())
	require.Equal(t, DarkValue, store.values[KeyDarkMode])

	require.False(t, h.ToggleDarkMode())
	require.Equal(t, LightValue, store.values[KeyDarkMode])
}

func TestSetColorThemeSanitizes(t *testing.T) {
	store := newMemoryStore()
	h := New(zerolog.Nop(), WithStore(store))

	h.SetColorTheme("evil;</style>")

	got := h.State().ColorTheme
	require.Equal(t, "evilstyle", got)
	require.NotEqual(t, "evil;</style>", got)
	require.Equal(t, "evilstyle", store.values[KeyColorTheme])
	require.Equal(t, "theme-evilstyle", h.Markers().ThemeClass)
}

func TestSetColorThemeRejectsEmpty(t *testing.T) {
	h := New(zerolog.Nop())

	fired := 0
	h.Subscribe(func(State) { fired++ })

	h.SetColorTheme("")
	h.SetColorTheme("   ")
	h.SetColorTheme(";;;")

	require.Equal(t, DefaultTheme, h.State().ColorTheme)
	require.Zero(t, fired)
}

func TestListenersGetStateCopies(t *testing.T) {
	h := New(zerolog.Nop())

	var seen []State
	h.Subscribe(func(s State) { seen = append(seen, s) })
	h.Subscribe(func(s State) { seen = append(seen, s) })

	h.SetColorTheme("moss")

	require.Len(t, seen, 2, "every listener fires once per change")
	for _, s := range seen {
		require.Equal(t, State{ColorTheme: "moss", DarkMode: false}, s)
	}
}

func TestMarkersIndependentAxes(t *testing.T) {
	sink := &markerRecorder{}
	h := New(zerolog.Nop(), WithMarkerSink(sink))

	h.SetColorTheme("aurora")
	require.Equal(t, Markers{ThemeClass: "theme-aurora", Dark: false}, sink.last())

	h.SetDarkMode(true)
	require.Equal(t, Markers{ThemeClass: "theme-aurora", Dark: true}, sink.last())

	h.SetColorTheme("moss")
	require.Equal(t, Markers{ThemeClass: "theme-moss", Dark: true}, sink.last(),
		"changing the theme must not touch the dark marker")
}

func TestStoreFailureDegradesToMemoryOnly(t *testing.T) {
	store := newMemoryStore()
	store.getErr = errors.New("storage disabled")
	store.setErr = errors.New("storage disabled")

	h := New(zerolog.Nop(), WithStore(store))

	h.SetColorTheme("aurora")
	h.SetDarkMode(true)

	// The in-memory record stays authoritative despite the broken store.
	require.Equal(t, State{ColorTheme: "aurora", DarkMode: true}, h.State())
}

func TestSanitize(t *testing.T) {
	cases := map[string]string{
		"aurora":          "aurora",
		"My_Theme-2":      "My_Theme-2",
		"evil;</style>":   "evilstyle",
		"{inject:attr}":   "injectattr",
		"../../etc":       "etc",
		"  spaced  name ": "spacedname",
	}
	for input, want := range cases {
		require.Equal(t, want, Sanitize(input), "input %q", input)
	}
}
