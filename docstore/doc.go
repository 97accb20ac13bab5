// Package docstore provides storage for encoded annotation documents.
//
// Store is the interface for reading and writing documents by name.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - MemoryStore: in-memory, for tests
//   - LocalStore: local filesystem with atomic temp+rename writes
//   - s3.Store: Amazon S3, with an optional DynamoDB-backed version catalog
//   - minio.Store: MinIO and other S3-compatible storage
//
// # Bulk export
//
// Exporter fans a batch of documents out to a store with bounded
// concurrency and optional byte-rate throttling:
//
//	exp := docstore.NewExporter(store, func(o *docstore.ExportOptions) {
//	    o.Concurrency = 8
//	})
//	err := exp.Export(ctx, docs)
package docstore
