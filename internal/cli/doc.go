// Package cli defines the Cobra command tree for the appscaffold CLI. The root
// command generates the layout; the remaining files each register one
// subcommand. Command implementations delegate to internal packages and only
// handle flag parsing and output.
package cli
