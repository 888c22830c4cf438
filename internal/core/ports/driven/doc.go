// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - SettingsStore: Application settings (API key, intervals)
//   - SyncedStore: Synced key/value persistence (sync cursor)
//   - ExportClient: Fetches changed records from the export API
//   - RecordImporter: Materialises records into the knowledge base
//   - SchemaRegistrar: Declares record kinds at startup
//   - Notifier: Fire-and-forget user-visible messages
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - CycleHistoryStore: Sync cycle history. Without it, status reporting
//     shows the cursor only.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
