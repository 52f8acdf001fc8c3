package emit

import (
	"strings"

	"golang.org/x/net/html"
)

// HTMLToMarkdown converts a Smithy `@documentation` trait's HTML body
// (Smithy documentation is modeled as a restricted subset of HTML) into
// plain text suitable for a Go doc comment: headings, paragraphs, lists,
// and inline code/emphasis are flattened to Markdown-ish plain text, since
// godoc does not render embedded HTML.
func HTMLToMarkdown(src string) string {
	node, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return src
	}
	var b strings.Builder
	renderNode(&b, node)
	return strings.TrimSpace(collapseBlankLines(b.String()))
}

func renderNode(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
	case html.ElementNode:
		switch n.Data {
		case "p", "div":
			renderChildren(b, n)
			b.WriteString("\n\n")
		case "br":
			b.WriteString("\n")
		case "h1", "h2", "h3", "h4":
			b.WriteString("\n")
			renderChildren(b, n)
			b.WriteString("\n\n")
		case "ul", "ol":
			renderChildren(b, n)
			b.WriteString("\n")
		case "li":
			b.WriteString("  - ")
			renderChildren(b, n)
			b.WriteString("\n")
		case "code", "pre":
			b.WriteString("`")
			renderChildren(b, n)
			b.WriteString("`")
		case "b", "strong":
			b.WriteString("**")
			renderChildren(b, n)
			b.WriteString("**")
		case "i", "em":
			b.WriteString("_")
			renderChildren(b, n)
			b.WriteString("_")
		case "a":
			renderChildren(b, n)
			if href := attr(n, "href"); href != "" {
				b.WriteString(" (")
				b.WriteString(href)
				b.WriteString(")")
			}
		default:
			renderChildren(b, n)
		}
	default:
		renderChildren(b, n)
	}
}

func renderChildren(b *strings.Builder, n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		renderNode(b, c)
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func collapseBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	var out []string
	blank := false
	for _, l := range lines {
		trimmed := strings.TrimRight(l, " \t")
		if trimmed == "" {
			if blank {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, trimmed)
	}
	return strings.Join(out, "\n")
}
