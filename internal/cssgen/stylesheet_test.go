package cssgen

import (
	"strings"
	"testing"

	"github.com/hueforge/huebuild/internal/models"
)

func TestStylesheetOrderAndHeader(t *testing.T) {
	set := map[string]models.Theme{
		"zulu": chartTheme(),
		"alfa": chartTheme(),
	}
	// Theme blocks carry their own id.
	zulu := set["zulu"]
	zulu.ID = "zulu"
	set["zulu"] = zulu
	alfa := set["alfa"]
	alfa.ID = "alfa"
	set["alfa"] = alfa

	sheet := Stylesheet(set)

	if !strings.HasPrefix(sheet, Header) {
		t.Fatalf("missing header:\n%s", sheet)
	}

	ai := strings.Index(sheet, ":root.theme-alfa")
	zi := strings.Index(sheet, ":root.theme-zulu")
	if ai == -1 || zi == -1 {
		t.Fatalf("missing theme blocks:\n%s", sheet)
	}
	if ai > zi {
		t.Error("themes must be assembled in id order")
	}

	if again := Stylesheet(set); again != sheet {
		t.Error("stylesheet assembly must be deterministic")
	}
}
