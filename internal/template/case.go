package template

import (
	"strings"
	"unicode"
)

// UpperCamelCase converts a kebab-case, snake_case, or space-separated
// string to UpperCamelCase. Examples: "my-package" -> "MyPackage",
// "demo_app" -> "DemoApp".
func UpperCamelCase(s string) string {
	var b strings.Builder
	capitalizeNext := true

	for _, r := range s {
		if r == '-' || r == '_' || r == ' ' {
			capitalizeNext = true
			continue
		}
		if capitalizeNext {
			b.WriteRune(unicode.ToUpper(r))
			capitalizeNext = false
		} else {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// LowerSnakeCase converts a name to lower_snake_case.
// Examples: "MyPackage" -> "my_package", "demo-app" -> "demo_app".
func LowerSnakeCase(s string) string {
	var b strings.Builder
	var prev rune

	for i, r := range s {
		switch {
		case r == '-' || r == ' ':
			b.WriteRune('_')
		case unicode.IsUpper(r):
			if i > 0 && prev != '_' && prev != '-' && prev != ' ' && !unicode.IsUpper(prev) {
				b.WriteRune('_')
			}
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
		prev = r
	}

	return b.String()
}
