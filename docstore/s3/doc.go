// Package s3 implements docstore.Store for Amazon S3, with an optional
// DynamoDB-backed Catalog that orders concurrent publishers of the same
// named document through conditional writes.
package s3
