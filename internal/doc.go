// Package internal contains the core implementation packages for subsea.
//
// # Package Organization
//
//   - diagnostic: Binary diagnostic records, frequency table and rating filters
//   - sonar, dive, bingo: The other daily solvers
//   - puzzle: Solver contract and the day registry
//   - input: Input file reading and line splitting
//   - config: Configuration loading and validation
//   - errors: Structured errors, exit codes and fix-up suggestions
//   - logging: Structured logging on log/slog
//   - watcher: Debounced file watching for the watch command
//   - version: Build metadata
package internal
