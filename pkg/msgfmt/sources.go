package msgfmt

import (
	"fmt"
	"strings"

	"github.com/corvid-labs/corpusbot/pkg/vectara"
)

// MaxSources caps how many citation links get rendered. Anything past the
// cap is dropped; the order of the input is preserved as-is.
const MaxSources = 15

// FormatSources renders a header plus one markdown-link bullet per source.
// Returns the empty string when there is nothing to cite.
func FormatSources(sources []vectara.Source) string {
	if len(sources) == 0 {
		return ""
	}
	if len(sources) > MaxSources {
		sources = sources[:MaxSources]
	}
	var sb strings.Builder
	sb.WriteString("**Sources:**")
	for _, src := range sources {
		sb.WriteString(fmt.Sprintf("\n- [%s](%s)", src.Title, src.URL))
	}
	return sb.String()
}
