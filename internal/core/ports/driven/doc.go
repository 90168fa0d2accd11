// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ObjectStore: Blob persistence for snippets and images
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - DocumentStore: Queryable mirror of saved snippets. Without it,
//     saves skip the mirror write.
//   - EmbeddingService: Generates vector embeddings. Without it,
//     semantic snippet search is disabled.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
