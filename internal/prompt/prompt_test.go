package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAskYesNo(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   bool
		want  bool
	}{
		{name: "yes", input: "y\n", def: false, want: true},
		{name: "full yes", input: "yes\n", def: false, want: true},
		{name: "no", input: "n\n", def: true, want: false},
		{name: "empty uses default true", input: "\n", def: true, want: true},
		{name: "empty uses default false", input: "\n", def: false, want: false},
		{name: "invalid then yes", input: "what\ny\n", def: false, want: true},
		{name: "case insensitive", input: "YES\n", def: false, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewStd(strings.NewReader(tt.input), &bytes.Buffer{})

			got, err := p.AskYesNo("Proceed?", tt.def)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAskYesNo_EOFWithoutAnswer(t *testing.T) {
	p := NewStd(strings.NewReader(""), &bytes.Buffer{})

	_, err := p.AskYesNo("Proceed?", false)
	assert.Error(t, err)
}

func TestAskChoice(t *testing.T) {
	options := []string{"empty", "with coin example", "with companion app"}

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "first", input: "1\n", want: 0},
		{name: "last", input: "3\n", want: 2},
		{name: "empty uses default", input: "\n", want: 1},
		{name: "out of range then valid", input: "7\n2\n", want: 1},
		{name: "non-numeric then valid", input: "abc\n1\n", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewStd(strings.NewReader(tt.input), &out)

			got, err := p.AskChoice("Pick a template:", options, 1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "with coin example")
		})
	}
}

func TestAskString(t *testing.T) {
	p := NewStd(strings.NewReader("MyPackage\n"), &bytes.Buffer{})
	got, err := p.AskString("Package name", "Demo")
	require.NoError(t, err)
	assert.Equal(t, "MyPackage", got)

	p = NewStd(strings.NewReader("\n"), &bytes.Buffer{})
	got, err = p.AskString("Package name", "Demo")
	require.NoError(t, err)
	assert.Equal(t, "Demo", got)
}

func TestAskString_LastLineWithoutNewline(t *testing.T) {
	p := NewStd(strings.NewReader("Demo"), &bytes.Buffer{})
	got, err := p.AskString("Package name", "")
	require.NoError(t, err)
	assert.Equal(t, "Demo", got)
}
