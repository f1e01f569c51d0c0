package document

import (
	"strings"
	"unicode/utf8"

	"contrast-audit/internal/domain/entity"
	"contrast-audit/internal/infrastructure/cssparser"

	"golang.org/x/net/html"
)

// collectElements flattens the <html> subtree (or the whole document when there is none)
// into a slice where each element points at its parent by index. <html> is the root.
func (l *Loader) collectElements(root *html.Node) []entity.StaticElement {
	start := findElement(root, "html")
	if start == nil {
		start = root
	}

	var out []entity.StaticElement
	var walk func(n *html.Node, parent int)
	walk = func(n *html.Node, parent int) {
		if n.Type == html.ElementNode {
			if isOneOf(n.Data, l.cfg.TagsToSkip...) {
				return
			}
			out = append(out, entity.StaticElement{
				Text:        ownText(n),
				Markup:      truncateMarkup(renderNode(n), l.cfg.MaxMarkupLen),
				TagName:     strings.ToLower(n.Data),
				ID:          attr(n, "id"),
				ClassList:   strings.Fields(attr(n, "class")),
				InlineStyle: l.inlineStyle(n),
				Parent:      parent,
			})
			parent = len(out) - 1
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, parent)
		}
	}
	walk(start, -1)

	return out
}

// findElement returns the first element named tag in document order, or nil.
func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findElement(c, tag); b != nil {
			return b
		}
	}
	return nil
}

// ownText joins the element's direct text children, so a container is not credited with
// the text of its descendants.
func ownText(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
			sb.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// inlineStyle parses the style attribute. A malformed attribute keeps the declarations read
// before the error.
func (l *Loader) inlineStyle(n *html.Node) map[string]string {
	style := attr(n, "style")
	props, err := cssparser.ParseInline(style)
	if err != nil {
		l.logger.Warn("Malformed inline style", "tag", n.Data, "style", style, "error", err)
	}
	if len(props) == 0 {
		return nil
	}
	return props
}

func renderNode(n *html.Node) string {
	var sb strings.Builder
	_ = html.Render(&sb, n)
	return sb.String()
}

// truncateMarkup cuts markup to at most maxSize bytes without splitting a UTF-8 sequence.
func truncateMarkup(markup string, maxSize int) string {
	if len(markup) <= maxSize {
		return markup
	}
	cut := maxSize
	for cut > 0 && !utf8.RuneStart(markup[cut]) {
		cut--
	}
	return markup[:cut] + "…"
}

func isOneOf(s string, candidates ...string) bool {
	for _, c := range candidates {
		if s == c {
			return true
		}
	}
	return false
}
