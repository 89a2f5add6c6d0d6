package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpperCamelCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"my-package", "MyPackage"},
		{"demo_app", "DemoApp"},
		{"already Camel", "AlreadyCamel"},
		{"single", "Single"},
		{"MyPackage", "MyPackage"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, UpperCamelCase(tt.in), tt.in)
	}
}

func TestLowerSnakeCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"MyPackage", "my_package"},
		{"demo-app", "demo_app"},
		{"Demo", "demo"},
		{"already_snake", "already_snake"},
		{"HTTPServer", "httpserver"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LowerSnakeCase(tt.in), tt.in)
	}
}
