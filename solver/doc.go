// Package solver is the day registry behind the lvlgrid command.
//
// Each puzzle registers itself from an init function with its title, a Solve
// func, and a sample input with known answers:
//
//   - day 5:  line overlay (overlay package)
//   - day 9:  basin discovery (basin package)
//   - day 11: cascade simulation (cascade package)
//   - day 13: fold transform (fold package)
//
// Run reads input and solves one day; Check verifies a day against its own
// sample. Progress is logged through a logrus logger at debug level; the CLI
// installs its own with SetLogger.
package solver
