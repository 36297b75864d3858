package surface_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"boldkey/internal/surface"
	"boldkey/internal/surface/surfacetest"
)

// bareElement has a role but no editing capability.
type bareElement struct {
	tag       string
	inputType string
	editable  bool
}

func (e bareElement) TagName() string { return e.tag }
func (e bareElement) InputType() string { return e.inputType }
func (e bareElement) IsContentEditable() bool { return e.editable }

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		el   surface.Element
		want surface.Kind
	}{
		{name: "nil element", el: nil, want: surface.KindNone},
		{name: "textarea", el: surfacetest.NewTextArea("", 0, 0), want: surface.KindFlatText},
		{name: "text input", el: surfacetest.NewInput("text", "", 0, 0), want: surface.KindFlatText},
		{name: "input without type", el: surfacetest.NewInput("", "", 0, 0), want: surface.KindFlatText},
		{name: "input type is case-insensitive", el: surfacetest.NewInput("TEXT", "", 0, 0), want: surface.KindFlatText},
		{name: "password input", el: surfacetest.NewInput("password", "", 0, 0), want: surface.KindNone},
		{name: "email input", el: surfacetest.NewInput("email", "", 0, 0), want: surface.KindNone},
		{name: "content editable", el: surfacetest.NewRegion("x"), want: surface.KindRichText},
		{name: "button", el: bareElement{tag: "BUTTON"}, want: surface.KindNone},
		{name: "textarea without capability", el: bareElement{tag: "TEXTAREA"}, want: surface.KindNone},
		{name: "editable div without capability", el: bareElement{tag: "DIV", editable: true}, want: surface.KindNone},
		{name: "lower-case tag", el: bareElement{tag: "body"}, want: surface.KindNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := surface.Classify(tt.el)
			assert.Equal(t, tt.want, got.Kind())
		})
	}
}

func TestClassify_CarriesCapability(t *testing.T) {
	ta := surfacetest.NewTextArea("abc", 0, 1)
	flat, ok := surface.Classify(ta).(surface.FlatText)
	if assert.True(t, ok) {
		assert.Same(t, ta, flat.Field)
	}

	region := surfacetest.NewRegion("abc")
	rich, ok := surface.Classify(region).(surface.RichText)
	if assert.True(t, ok) {
		assert.Same(t, region, rich.Region)
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "flat-text-field", surface.KindFlatText.String())
	assert.Equal(t, "rich-text-region", surface.KindRichText.String())
	assert.Equal(t, "none", surface.KindNone.String())
}
