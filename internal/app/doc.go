// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the dispatch lifecycle that resolves a pack
// and a day and prints the day's results, decoupled from the CLI entrypoint.
package app
