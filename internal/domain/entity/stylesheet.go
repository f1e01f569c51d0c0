package entity

type RuleKind string

const (
	RuleKindSelector RuleKind = "selector"
	RuleKindAt       RuleKind = "at"
)

type StylesheetFile struct {
	Source  string
	Content string
}

type Declaration struct {
	Property string
	Value    string
}

type StyleRule struct {
	Kind         RuleKind
	Selectors    []string
	Declarations []Declaration
	Rules        []StyleRule
}

type Stylesheet struct {
	Source string
	Rules  []StyleRule
}

// StylePropertyBag maps a class name to its flattened property -> value declarations.
type StylePropertyBag map[string]map[string]string

// StyleOverrides is what the classes of one element contribute. Nil means never set.
type StyleOverrides struct {
	TextColor       *string
	BackgroundColor *string
	FontSize        *string
	FontWeight      *string
}
