// Package gen renders projected questions into source artifacts.
//
// Generation approach uses encoding/json for literal bodies and
// text/template + golang.org/x/tools/imports for Go output, so every run
// over the same questions is byte-identical.
//
// Dialects:
//   - typescript: a fixed interface declaration followed by an exported
//     constant initialized with the question array
//   - json: the canonical question array on its own
//   - go: a struct type and a package-level slice literal
package gen
