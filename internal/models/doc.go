// Package models defines the core domain models for the shopping assistant.
//
// # Models
//
//   - Item: one entry on a user's shopping list
//   - Place: a geofenced store location registered by a user
//   - ParsedIntent: the action extracted from one user message
//
// Structured results (AddResult, ListResult, CompleteResult, ClearResult,
// ProximityResult) carry the outcome of a single list or geofence operation.
// They are what the response synthesizer renders into user-facing text.
//
// # Design Principles
//
//  1. **Owner scoping**: every persisted record carries an OwnerID and no
//     operation crosses owner boundaries. Identity is always an explicit
//     input, never a process-wide default.
//  2. **Append-mostly history**: items are never physically removed except
//     by the clear operation, which deletes open items only. Completed
//     items are retained as history.
//  3. **Avoid circular references**: records reference each other by ID
//     strings, not pointers.
package models
