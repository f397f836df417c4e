package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDinars(t *testing.T) {
	tests := []struct {
		name  string
		price string
		want  int
	}{
		{name: "plain", price: "800 DA", want: 800},
		{name: "thousands with space", price: "1 200 DA", want: 1200},
		{name: "free", price: "Gratuit", want: 0},
		{name: "zero", price: "0 DA", want: 0},
		{name: "empty", price: "", want: 0},
		{name: "leading spaces", price: "  400 DA", want: 400},
		{name: "integer prefix only", price: "2x500", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDinars(tt.price))
		})
	}
}

func TestFormatDinars(t *testing.T) {
	assert.Equal(t, "800 DA", FormatDinars(800))
	assert.Equal(t, "0 DA", FormatDinars(0))
}
