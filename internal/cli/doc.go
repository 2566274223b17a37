// Package cli implements the command-line interface for the roster builder.
//
// The cli package provides the Cobra-based CLI that runs the full build
// pipeline: fetch the published CSV, parse the roster, sort and classify
// members, render roster.html, and write it out. It exits non-zero when the
// fetch fails or the sheet yields no valid members, and never writes a
// partial page.
package cli
