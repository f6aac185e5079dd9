// Package main hosts the Pigeonhole CLI entrypoint and command graph.
//
// The Cobra-based command tree wires terminal invocations to the
// relocation engine: the organize command resolves configuration, runs
// the preflight checks, takes the per-tree run lock, snapshots the
// source, and drives the organizer, while the config subcommands scaffold
// and inspect configuration files.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags
// here.
package main
