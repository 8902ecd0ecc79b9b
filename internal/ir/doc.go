// Package ir provides the record value model shared by every other package.
//
// This package contains data types and pure functions only. All other
// internal packages import ir; ir imports nothing internal.
//
// Key design constraints:
//   - Objects keep member insertion order. Field resolution scans members in
//     record order and item identity hashes the record in that order.
//   - Absent is a nil Value, never Null. Null is a present JSON null.
//   - Item IDs are content-addressed (see ItemID): same group and same content
//     means same ID, any content change means a new ID.
package ir
