// Package cli turns the command line into an app.Config. It owns flag
// parsing, flag validation and the exit codes of usage errors, so that the
// app package never sees raw arguments.
package cli
