package scaffold

import (
	"os"

	"github.com/movekit/cli/internal/template"
)

// Render mirrors sourceRoot into destRoot, applying ctx token substitution
// to every destination path and to every file's contents. Path and content
// rewriting share the same substitution semantics but are independent
// passes: a token in a filename never affects that file's contents.
func Render(sourceRoot, destRoot string, ctx *template.Context) error {
	return Mirror(sourceRoot, destRoot, MirrorOptions{
		TransformPath: ctx.ApplyPath,
		CopyFile: func(src, dst string) error {
			return renderFile(src, dst, ctx)
		},
	})
}

// renderFile reads src, substitutes tokens in its contents, and writes the
// result to dst with the source file's mode.
func renderFile(src, dst string, ctx *template.Context) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	rendered := ctx.Apply(string(content))

	return os.WriteFile(dst, []byte(rendered), info.Mode().Perm())
}
