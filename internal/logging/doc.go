// Package logger provides levelled logging for mpw CLI commands.
//
// # Verbosity Levels
//
// Logging behavior is controlled by two flags:
//
//   - --verbose: Shows info messages
//   - --debug: Shows info and debug messages
//
// Warnings and errors are always written to stderr.
//
// # Log Methods
//
//	Logger.Infof()           // Shown with --verbose or --debug
//	Logger.Debugf()          // Shown only with --debug
//	Logger.Warnf()           // Always shown
//	Logger.Errorf()          // Always shown
//	Logger.ErrorfAndReturn() // Logged with --verbose or --debug, returned as error
//
// # Usage
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Loaded %d sites", count)
//
// Commands create a logger in the root PersistentPreRun and pass it to
// workflows through their options. Master passphrases, master secrets and
// generated passwords must never be passed to any log method.
package logger
