// Package cmd holds the command implementations of the scm CLI.
//
// Each command is a Kong command struct whose Run method receives the
// bound logger, output writer and global flags.
package cmd
