package cssgen

import (
	"sort"
	"strings"

	"github.com/hueforge/huebuild/internal/models"
)

// Header precedes every assembled stylesheet. Kept free of timestamps so
// rebuilds of the same theme set are byte-identical.
const Header = "/* generated by huebuild; do not edit */\n"

// Stylesheet assembles one block per theme, in id order, into the single
// stylesheet every page consumes.
func Stylesheet(set map[string]models.Theme) string {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var sb strings.Builder
	sb.WriteString(Header)
	for _, id := range ids {
		sb.WriteString("\n")
		sb.WriteString(Generate(set[id]))
	}
	return sb.String()
}
