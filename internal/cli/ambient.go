package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/hueforge/huebuild/internal/color"
)

// ambientDark resolves the environment's dark/light preference. It is
// only consulted when no dark-mode value has been persisted yet.
// HUEBUILD_DARK wins; after that the pywal cache, if present, classifies
// the terminal background by luminance.
func ambientDark() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("HUEBUILD_DARK"))) {
	case "1", "true", "dark", "on":
		return true
	case "0", "false", "light", "off":
		return false
	}

	if dark, ok := pywalDark(); ok {
		return dark
	}

	return false
}

// pywalColors is the subset of pywal's colors.json we read.
type pywalColors struct {
	Special struct {
		Background string `json:"background"`
	} `json:"special"`
}

func pywalDark() (dark, ok bool) {
	home, err := os.UserHomeDir()
	if err != nil {
		return false, false
	}

	data, err := os.ReadFile(filepath.Join(home, ".cache", "wal", "colors.json"))
	if err != nil {
		return false, false
	}

	var c pywalColors
	if err := json.Unmarshal(data, &c); err != nil {
		return false, false
	}
	if _, valid := color.ParseHex(c.Special.Background); !valid {
		return false, false
	}

	return color.RelativeLuminance(c.Special.Background) < 0.5, true
}
