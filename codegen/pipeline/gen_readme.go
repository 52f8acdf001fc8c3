package pipeline

import (
	"fmt"
	"strings"
)

// renderReadme builds README.md: the service name and documentation,
// followed by a table of its operations, matching spec.md §6's per-service
// output layout. Unlike the other renderers this is Markdown rather than
// Go source, so it is assembled directly rather than through codegen/emit's
// Go-flavored Node tree.
func renderReadme(v *svcView) string {
	var b strings.Builder

	name := v.name(v.model.ServiceID)
	fmt.Fprintf(&b, "# %s\n\n", name)

	if doc := v.doc(v.model.ServiceID); len(doc) > 0 {
		b.WriteString(strings.Join(doc, "\n"))
		b.WriteString("\n\n")
	}

	if len(v.provider.AuthSchemes) > 0 {
		fmt.Fprintf(&b, "Auth schemes: %s\n\n", strings.Join(v.provider.AuthSchemes, ", "))
	}

	b.WriteString("## Operations\n\n")
	b.WriteString("| Name |\n|---|\n")
	for _, opID := range v.provider.Operations {
		fmt.Fprintf(&b, "| %s |\n", v.name(opID))
	}

	if len(v.resources) > 0 {
		b.WriteString("\n## Resources\n\n")
		for _, resID := range v.resources {
			fmt.Fprintf(&b, "- %s\n", v.name(resID))
		}
	}

	return b.String()
}
