// Package datasource provides the tabular collaborator for data-bound
// annotations: named columns of equal length, plus Roaring Bitmap-backed
// row views for rendering a subset of rows.
//
// Sources are read-shared between annotations; the schema layer never
// assumes exclusive ownership and a source's lifetime is independent of
// any annotation that references it.
package datasource
