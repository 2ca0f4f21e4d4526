package validate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hueforge/huebuild/internal/models"
)

// Report renders a batch validation outcome as plain text, one section
// per theme in id order, errors before warnings. It is formatting only;
// no validation logic lives here.
func Report(results map[string]models.ValidationResult) string {
	ids := make([]string, 0, len(results))
	for id := range results {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var sb strings.Builder
	for _, id := range ids {
		result := results[id]

		status := "PASS"
		if !result.Valid {
			status = "FAIL"
		}
		fmt.Fprintf(&sb, "theme %s: %s\n", id, status)

		for _, e := range result.Errors {
			fmt.Fprintf(&sb, "  - error: %s\n", e)
		}
		for _, w := range result.Warnings {
			fmt.Fprintf(&sb, "  - warning: %s\n", w)
		}
	}

	return sb.String()
}
