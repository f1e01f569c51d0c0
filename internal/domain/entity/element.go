package entity

// ComputedStyle is the effective style bundle of a checked element.
// Colors keep whatever representation the source produced (hex, rgb(), rgba(), named).
type ComputedStyle struct {
	TextColor       string `json:"text_color" yaml:"text_color"`
	BackgroundColor string `json:"background_color" yaml:"background_color"`
	FontSize        string `json:"font_size" yaml:"font_size"`
	FontWeight      string `json:"font_weight" yaml:"font_weight"`
}

type ElementStyleRecord struct {
	Text      string        `json:"text"`
	Markup    string        `json:"markup"`
	TagName   string        `json:"tag_name"`
	ID        string        `json:"id,omitempty"`
	ClassList []string      `json:"class_list,omitempty"`
	Computed  ComputedStyle `json:"computed"`
}

// StaticElement is an element read from a document on disk, before any style is resolved.
// Parent indexes into Document.Elements; -1 marks the root.
type StaticElement struct {
	Text        string
	Markup      string
	TagName     string
	ID          string
	ClassList   []string
	InlineStyle map[string]string
	Parent      int
}

type Document struct {
	Identifier  string
	Stylesheets []StylesheetFile
	Elements    []StaticElement
}
