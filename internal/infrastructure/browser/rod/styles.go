package rod

import (
	"contrast-audit/internal/domain/entity"
	"contrast-audit/internal/usecase/background"

	"github.com/ysmood/gson"
)

// collectStylesJS returns one entry per rendered element, <html> first, with its own
// computed background. The ancestor walk happens in Go through the background resolver.
const collectStylesJS = `(maxMarkup) => {
	const skip = "script, style, noscript, svg, iframe, template, link, meta, head, title";
	const index = new Map();
	const out = [];
	const root = document.documentElement;
	if (!root) {
		return out;
	}
	const all = [root, ...root.querySelectorAll("*")];
	for (const el of all) {
		if (el.closest(skip)) {
			continue;
		}
		let parent = -1;
		for (let p = el.parentElement; p; p = p.parentElement) {
			if (index.has(p)) {
				parent = index.get(p);
				break;
			}
		}
		const cs = window.getComputedStyle(el);
		const hidden = el.getClientRects().length === 0 || cs.visibility === "hidden";
		const text = hidden ? "" : Array.from(el.childNodes)
			.filter((n) => n.nodeType === Node.TEXT_NODE)
			.map((n) => n.textContent)
			.join(" ")
			.replace(/\s+/g, " ")
			.trim();
		index.set(el, out.length);
		out.push({
			text: text,
			markup: el.outerHTML.slice(0, maxMarkup),
			tag: el.tagName.toLowerCase(),
			id: el.id || "",
			classes: Array.from(el.classList),
			color: cs.color,
			background: cs.backgroundColor,
			fontSize: cs.fontSize,
			fontWeight: cs.fontWeight,
			parent: parent,
		});
	}
	return out;
}`

type styleNode struct {
	Text       string
	Markup     string
	Tag        string
	ID         string
	Classes    []string
	Color      string
	Background string
	FontSize   string
	FontWeight string
	Parent     int
}

func parseNodes(v gson.JSON) []styleNode {
	items := v.Arr()
	nodes := make([]styleNode, 0, len(items))
	for _, item := range items {
		n := styleNode{
			Text:       item.Get("text").Str(),
			Markup:     item.Get("markup").Str(),
			Tag:        item.Get("tag").Str(),
			ID:         item.Get("id").Str(),
			Color:      item.Get("color").Str(),
			Background: item.Get("background").Str(),
			FontSize:   item.Get("fontSize").Str(),
			FontWeight: item.Get("fontWeight").Str(),
			Parent:     item.Get("parent").Int(),
		}
		for _, c := range item.Get("classes").Arr() {
			n.Classes = append(n.Classes, c.Str())
		}
		nodes = append(nodes, n)
	}
	return nodes
}

// recordsFromNodes resolves every node's background to the nearest opaque ancestor.
// Nodes whose parent chain cannot be walked are dropped and counted.
func recordsFromNodes(nodes []styleNode) ([]entity.ElementStyleRecord, int) {
	resolver := background.Indexed(
		func(i int) int {
			p := nodes[i].Parent
			if p >= len(nodes) {
				return -1
			}
			return p
		},
		func(i int) (string, bool) {
			return nodes[i].Background, nodes[i].Background != ""
		},
	)

	records := make([]entity.ElementStyleRecord, 0, len(nodes))
	skipped := 0
	for i, n := range nodes {
		bg, err := resolver.Resolve(i)
		if err != nil {
			skipped++
			continue
		}
		records = append(records, entity.ElementStyleRecord{
			Text:      n.Text,
			Markup:    n.Markup,
			TagName:   n.Tag,
			ID:        n.ID,
			ClassList: n.Classes,
			Computed: entity.ComputedStyle{
				TextColor:       n.Color,
				BackgroundColor: bg,
				FontSize:        n.FontSize,
				FontWeight:      n.FontWeight,
			},
		})
	}
	return records, skipped
}
