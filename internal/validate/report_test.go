package validate

import (
	"strings"
	"testing"

	"github.com/hueforge/huebuild/internal/models"
)

func TestReportOrderingAndMarkers(t *testing.T) {
	results := map[string]models.ValidationResult{
		"zulu": {Valid: true},
		"alfa": {
			Valid:    false,
			Errors:   []string{"missing accent.light color"},
			Warnings: []string{"charts.primary has only 2 colors"},
		},
	}

	report := Report(results)

	alfa := strings.Index(report, "theme alfa: FAIL")
	zulu := strings.Index(report, "theme zulu: PASS")
	if alfa == -1 || zulu == -1 {
		t.Fatalf("missing theme sections:\n%s", report)
	}
	if alfa > zulu {
		t.Error("themes should be reported in id order")
	}

	errIdx := strings.Index(report, "error: missing accent.light color")
	warnIdx := strings.Index(report, "warning: charts.primary has only 2 colors")
	if errIdx == -1 || warnIdx == -1 {
		t.Fatalf("missing findings:\n%s", report)
	}
	if errIdx > warnIdx {
		t.Error("errors should be listed before warnings")
	}
}

func TestReportEmpty(t *testing.T) {
	if got := Report(nil); got != "" {
		t.Errorf("expected empty report, got %q", got)
	}
}
