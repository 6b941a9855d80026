package palette

import (
	"regexp"

	"github.com/hashicorp/hcl/v2/hclwrite"
)

var multipleBlankLines = regexp.MustCompile(`\n{3,}`)
var blankLineAfterOpenBrace = regexp.MustCompile(`\{\n\s*\n`)
var blankLineBeforeCloseBrace = regexp.MustCompile(`\n\s*\n(\s*\})`)

// Format returns the palette source formatted according to HCL canonical
// style rules, with consecutive blank lines collapsed and blank lines next
// to braces removed. It works even on partial or invalid HCL.
func Format(content string) string {
	formatted := hclwrite.Format([]byte(content))
	collapsed := multipleBlankLines.ReplaceAllString(string(formatted), "\n\n")
	collapsed = blankLineAfterOpenBrace.ReplaceAllString(collapsed, "{\n")
	collapsed = blankLineBeforeCloseBrace.ReplaceAllString(collapsed, "\n${1}")
	return collapsed
}
