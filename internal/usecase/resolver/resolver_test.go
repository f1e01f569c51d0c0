package resolver

import (
	"testing"

	"contrast-audit/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	got, err := Normalize(entity.ComputedStyle{
		TextColor:       "rgb(170, 170, 170)",
		BackgroundColor: "#FFFFFF",
		FontSize:        "18px",
		FontWeight:      "400",
	})
	require.NoError(t, err)

	assert.Equal(t, "#aaaaaa", got.TextColor)
	assert.Equal(t, "#FFFFFF", got.BackgroundColor)
	assert.True(t, got.Large)
}

func TestNormalize_InvalidColor(t *testing.T) {
	_, err := Normalize(entity.ComputedStyle{TextColor: "currentcolor", BackgroundColor: "#fff"})
	assert.ErrorIs(t, err, entity.ErrInvalidColor)

	_, err = Normalize(entity.ComputedStyle{TextColor: "#000", BackgroundColor: "url(x.png)"})
	assert.ErrorIs(t, err, entity.ErrInvalidColor)
}

func TestFromStylesheet_Fallbacks(t *testing.T) {
	bag := entity.StylePropertyBag{
		"text": {"color": "#333333"},
	}
	doc := entity.Document{Elements: []entity.StaticElement{
		{TagName: "body", Parent: -1},
		{TagName: "p", Text: "Hello", ClassList: []string{"text"}, Parent: 0},
	}}

	res := FromStylesheet(doc, bag)

	require.Len(t, res.Records, 1)
	rec := res.Records[0]
	assert.Equal(t, "p", rec.TagName)
	assert.Equal(t, entity.ComputedStyle{
		TextColor:       "#333333",
		BackgroundColor: DefaultBackground,
		FontSize:        DefaultFontSize,
		FontWeight:      DefaultFontWeight,
	}, rec.Computed)

	require.Len(t, res.Exclusions, 1)
	assert.Equal(t, Exclusion{Index: 0, Reason: ExcludedNoTextColor}, res.Exclusions[0])
}

func TestFromStylesheet_LastClassWinsAndInlineOverrides(t *testing.T) {
	bag := entity.StylePropertyBag{
		"muted":  {"color": "#999999", "font-size": "12px"},
		"strong": {"color": "#000000", "font-weight": "700"},
	}
	doc := entity.Document{Elements: []entity.StaticElement{
		{TagName: "span", Text: "a", ClassList: []string{"muted", "strong"}, Parent: -1},
		{TagName: "span", Text: "b", ClassList: []string{"strong", "muted"}, Parent: -1},
		{TagName: "span", Text: "c", ClassList: []string{"muted"}, InlineStyle: map[string]string{"color": "red"}, Parent: -1},
	}}

	res := FromStylesheet(doc, bag)
	require.Len(t, res.Records, 3)

	assert.Equal(t, "#000000", res.Records[0].Computed.TextColor)
	assert.Equal(t, "12px", res.Records[0].Computed.FontSize)
	assert.Equal(t, "700", res.Records[0].Computed.FontWeight)

	assert.Equal(t, "#999999", res.Records[1].Computed.TextColor)
	assert.Equal(t, "red", res.Records[2].Computed.TextColor)
}

func TestFromStylesheet_BackgroundFromAncestors(t *testing.T) {
	bag := entity.StylePropertyBag{
		"dark":  {"background-color": "#111111"},
		"clear": {"background-color": "transparent"},
		"text":  {"color": "#eeeeee"},
	}
	doc := entity.Document{Elements: []entity.StaticElement{
		{TagName: "main", ClassList: []string{"dark"}, Parent: -1},
		{TagName: "section", ClassList: []string{"clear"}, Parent: 0},
		{TagName: "p", Text: "x", ClassList: []string{"text"}, Parent: 1},
		{TagName: "div", InlineStyle: map[string]string{"background": "url(a.png) no-repeat rgb(0, 0, 255)"}, Parent: -1},
		{TagName: "em", Text: "y", ClassList: []string{"text"}, Parent: 3},
		{TagName: "div", InlineStyle: map[string]string{"background": "navy"}, Parent: -1},
		{TagName: "b", Text: "z", ClassList: []string{"text"}, Parent: 5},
	}}

	res := FromStylesheet(doc, bag)
	require.Len(t, res.Records, 3)

	assert.Equal(t, "#111111", res.Records[0].Computed.BackgroundColor)
	assert.Equal(t, "rgb(0, 0, 255)", res.Records[1].Computed.BackgroundColor)
	assert.Equal(t, "navy", res.Records[2].Computed.BackgroundColor)
}

func TestFromStylesheet_ClassBackgroundShorthand(t *testing.T) {
	bag := entity.StylePropertyBag{
		"card":  {"background": "#000000 url(card.png) no-repeat"},
		"hero":  {"background": "url(hero.jpg) center"},
		"light": {"color": "#ffffff"},
	}
	doc := entity.Document{Elements: []entity.StaticElement{
		{TagName: "div", ClassList: []string{"card"}, Parent: -1},
		{TagName: "p", Text: "on card", ClassList: []string{"light"}, Parent: 0},
		{TagName: "section", ClassList: []string{"hero"}, Parent: 0},
		{TagName: "p", Text: "on hero", ClassList: []string{"light"}, Parent: 2},
	}}

	res := FromStylesheet(doc, bag)
	require.Len(t, res.Records, 2)

	assert.Equal(t, "#000000", res.Records[0].Computed.BackgroundColor)
	assert.Equal(t, "#000000", res.Records[1].Computed.BackgroundColor)
}

func TestFromStylesheet_CyclicParentsExcluded(t *testing.T) {
	bag := entity.StylePropertyBag{"text": {"color": "#000"}}
	doc := entity.Document{Elements: []entity.StaticElement{
		{TagName: "a", Text: "x", ClassList: []string{"text"}, Parent: 1},
		{TagName: "b", Parent: 0},
	}}

	res := FromStylesheet(doc, bag)

	assert.Empty(t, res.Records)
	require.Len(t, res.Exclusions, 2)
	assert.Equal(t, ExcludedBackground, res.Exclusions[0].Reason)
	assert.ErrorIs(t, res.Exclusions[0].Err, entity.ErrDepthExceeded)
}
