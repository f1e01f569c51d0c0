package cssparser

import (
	"fmt"
	"strings"

	"contrast-audit/internal/application/port/output"
	"contrast-audit/internal/domain/entity"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

var _ output.StylesheetParser = (*Parser)(nil)

type Parser struct{}

func New() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(file entity.StylesheetFile) (*entity.Stylesheet, error) {
	sheet, err := parser.Parse(file.Content)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", entity.ErrStylesheetParse, file.Source, err)
	}

	return &entity.Stylesheet{
		Source: file.Source,
		Rules:  convertRules(sheet.Rules),
	}, nil
}

func convertRules(rules []*css.Rule) []entity.StyleRule {
	out := make([]entity.StyleRule, 0, len(rules))
	for _, r := range rules {
		if r == nil {
			continue
		}
		out = append(out, convertRule(r))
	}
	return out
}

func convertRule(r *css.Rule) entity.StyleRule {
	rule := entity.StyleRule{Kind: entity.RuleKindSelector}
	for _, sel := range r.Selectors {
		if sel = strings.TrimSpace(sel); sel != "" {
			rule.Selectors = append(rule.Selectors, sel)
		}
	}
	if r.Kind == css.AtRule {
		rule.Kind = entity.RuleKindAt
		rule.Rules = convertRules(r.Rules)
	}

	rule.Declarations = make([]entity.Declaration, 0, len(r.Declarations))
	for _, d := range r.Declarations {
		if d == nil {
			continue
		}
		rule.Declarations = append(rule.Declarations, entity.Declaration{
			Property: strings.ToLower(strings.TrimSpace(d.Property)),
			Value:    strings.TrimSpace(d.Value),
		})
	}
	return rule
}

// ParseInline reads the declarations of a style attribute into lowercase property -> value
// pairs. Later declarations win unless an earlier one of the same property is !important.
// On a malformed declaration the pairs read before it are returned with the error.
func ParseInline(style string) (map[string]string, error) {
	if strings.TrimSpace(style) == "" {
		return nil, nil
	}

	// a final declaration without a terminator is dropped by the parser
	decls, err := parser.ParseDeclarations(style + ";")

	out := make(map[string]string, len(decls))
	important := make(map[string]bool, len(decls))
	for _, d := range decls {
		if d == nil {
			continue
		}
		prop := strings.ToLower(strings.TrimSpace(d.Property))
		value := strings.TrimSpace(d.Value)
		if prop == "" || value == "" {
			continue
		}
		if important[prop] && !d.Important {
			continue
		}
		out[prop] = value
		important[prop] = d.Important
	}

	if err != nil {
		return out, fmt.Errorf("%w: inline style: %v", entity.ErrStylesheetParse, err)
	}
	return out, nil
}
