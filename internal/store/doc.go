// Package store provides SQLite-backed persistence for completion state.
//
// The store keeps:
//   - Completions: current completed flag per item ID
//   - Toggle events: append-only history of every state change
//   - Settings: small key/value pairs such as the last query text
//
// # Critical Patterns
//
// Logical Time
//   - Every state change gets the next seq from the event log
//   - Ordering uses seq, never timestamps
//
// Deterministic Query Results
//   - History queries use ORDER BY seq ASC, id COLLATE BINARY ASC
//
// Best-Effort Persistence
//   - Every method returns its error; callers decide whether to degrade.
//     The CLI falls back to an empty snapshot rather than failing a query.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait on lock contention
//   - Single connection: SQLite allows one writer
//
// Item IDs are content hashes (see ir.ItemID). Editing a record in the
// dataset gives it a new ID, so its old row simply stops matching.
package store
