// Package layout holds the folder and file set that appscaffold materializes.
//
// The layout is a YAML document embedded into the binary at build time and
// validated against an embedded JSON Schema on first use. Callers only ever
// receive copies, so the layout is effectively a constant for the life of the
// process.
package layout
