// Package cmd provides the command-line interface for subsea.
//
// This package implements all CLI commands using the Cobra framework.
//
// # Available Commands
//
//   - solve: Solve one day's puzzle from its input file
//   - diagnostic: Print the full day 3 diagnostic report, optionally with filter rounds
//   - watch: Re-solve a day whenever its input changes
//   - list: List registered days and their input files
//   - config: Show or validate the resolved configuration
//   - version: Show build information
//
// # Command Examples
//
//	// Solve day 3 from the configured input
//	subsea solve 3
//
//	// Diagnostic report with every filter round as YAML
//	subsea diagnostic report.txt --trace -o yaml
//
//	// Watch day 1 input while editing it
//	subsea watch 1 -v
//
// # Error Handling
//
// Errors are logged with their type and code and mapped to exit codes:
// 2 for invalid input, 3 for unreadable files, 4 for bad configuration
// and 1 otherwise.
package cmd
