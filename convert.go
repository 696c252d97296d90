package md2html

import "github.com/alnah/go-md2html/internal/pipeline"

// Convert renders markdown as an HTML fragment under opts. Keys missing from
// opts take their defaults; unknown keys are ignored. Convert never fails:
// malformed option values degrade through coercion.
func Convert(markdown string, opts Options) string {
	return pipeline.Fragment(pipeline.NormalizeLineEndings(markdown), opts)
}
