package textsize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLarge(t *testing.T) {
	tests := []struct {
		size   string
		weight string
		want   bool
	}{
		{"18px", "400", true},
		{"17px", "400", false},
		{"14px", "700", true},
		{"13px", "700", false},
		{"24px", "100", true},
		{"14px", "600", false},
		{"18.5px", "", true},
		{"17.99px", "900", true},
		{"14px", "bold", true},
		{"14px", "normal", false},
		{"", "", false},
		{"large", "700", false},
		{"16px", "heavy", false},
	}

	for _, tt := range tests {
		t.Run(tt.size+"/"+tt.weight, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLarge(tt.size, tt.weight))
		})
	}
}

func TestParseSize(t *testing.T) {
	assert.Equal(t, 16.0, ParseSize("16px"))
	assert.Equal(t, 0.5, ParseSize(".5em"))
	assert.Equal(t, 0.0, ParseSize("px16"))
}

func TestParseWeight(t *testing.T) {
	assert.Equal(t, 700, ParseWeight("700"))
	assert.Equal(t, 400, ParseWeight(" 400.5 "))
	assert.Equal(t, 0, ParseWeight("-1"))
}

func TestClass(t *testing.T) {
	assert.Equal(t, "large", Class(true))
	assert.Equal(t, "normal", Class(false))
}
