// Package audit records mpw operations in a local journal.
//
// Every command that changes the site document, generates passwords,
// imports or exports is appended to a JSON Lines file in the data
// directory:
//
//	~/.local/share/mpw/audit.jsonl
//
// Each entry has a random UUID, a UTC timestamp with microseconds, the OS
// user, the install UUID from the user config, the operation name and
// operation-specific details such as site names. Passphrases, master
// secrets and passwords are never recorded.
//
// # Usage
//
//	entry := audit.LogWithUser(audit.OpGenerate)
//	entry.Sites = names
//	audit.Log(entry)
//
// Logging is best-effort. ReadEntries skips malformed lines so a partially
// written entry does not hide the rest of the log.
package audit
