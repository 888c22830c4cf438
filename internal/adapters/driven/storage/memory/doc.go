// Package memory provides in-memory implementations of driven port
// interfaces. These adapters are used in tests and as fallbacks when no
// persistent store is configured.
package memory
