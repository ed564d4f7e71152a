package main

import (
	"strings"

	env "github.com/xyproto/env/v2"
)

// VerboseMode is set once at startup from --verbose or LONE_VERBOSE, the
// same package-level toggle idiom the teacher uses in main.go. Nothing in
// lone reads it: no diagnostic tracing is produced either way.
var VerboseMode bool

// environmentSearchPathDirectories splits LONE_PATH (colon-separated, the
// same convention as PATH) into directories to append after any --path
// flags (spec §6 "module search path ... optionally from environment").
func environmentSearchPathDirectories() []string {
	value := env.Str("LONE_PATH")
	if value == "" {
		return nil
	}
	var dirs []string
	for _, dir := range strings.Split(value, ":") {
		if dir != "" {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// environmentVerbose reports LONE_VERBOSE's boolean value, consulted
// only when --verbose wasn't passed explicitly.
func environmentVerbose() bool {
	return env.Bool("LONE_VERBOSE")
}
