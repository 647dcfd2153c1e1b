// Package scaffold materializes a layout.Layout on a billy.Filesystem. It
// powers the root "appscaffold" command (Run) and the read-only "check"
// command (Check).
package scaffold
