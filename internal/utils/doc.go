// Package utils provides shared utility functions for the mpw application.
//
// # Filesystem Utilities
//
//   - FileExists: reports whether a path exists
//   - ExpandHome: expands a leading ~ in user supplied paths
//   - WriteFileAtomic: temp file, chmod, rename
//
// # Memory Utilities
//
//   - Zero: overwrites passphrase and key buffers
//
// # I/O and Terminal Utilities
//
//   - ReadPassphrase: prompts without echo using golang.org/x/term
//   - ReadPassphraseStdin: reads the first line of piped stdin
//   - IsTerminal: checks whether stdin is a terminal
//
// # String Utilities
//
//   - FormatNames, SplitList, PadRight: output and flag helpers
package utils
