// Package main hosts the plagscan CLI entrypoint and command graph.
//
// The Cobra-based command tree loads configuration once, runs preflight
// checks, ingests a folder of text files or a CSV table, runs the detection
// pipeline, and either prints a summary or exports a report. Heavy lifting
// lives in the internal packages; commands here only wire flags to them.
package main
