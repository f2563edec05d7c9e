// Package docstore implements the document-ingestion and similarity
// search pipeline over an abstract vector store backend and embedding
// provider.
//
// The package owns three components:
//
//   - CollectionManager: collection lifecycle (list, exists, create,
//     delete, describe) with soft-boolean create/delete semantics.
//   - Ingestor: turns raw texts plus optional metadata into embedded
//     points, written in bounded sequential batches.
//   - SearchEngine: embeds a query and returns score-ranked results.
//
// Store composes the three behind the Service interface so any
// dispatcher (CLI, tool-calling loop, scripted caller) binds to the
// same typed capability set. All dependencies are injected through
// constructors; there is no package-level client.
//
// Consistency notes: ingestion commits batch by batch and does not roll
// back committed batches when a later batch fails (at-least-once).
// Existence checks and the mutating call that follows them are not
// atomic; concurrent create/delete of the same name is resolved by the
// backend alone.
package docstore
