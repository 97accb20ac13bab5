// Package annotations defines the declarative annotation variants of
// plotspec: Label, LabelSet and Title.
//
// Each variant is a Schema, the exhaustive ordered set of typed field
// descriptors with defaults. Construct applies overrides on top of
// defaults with atomic validation; Set mutates with the same validation;
// Resolve collapses literal-or-column fields against the bound data
// source at read time.
//
// The layer is purely synchronous: no I/O, no locking, no failure
// recovery beyond validation rejection. Rendering, layout and change
// propagation belong to external collaborators.
package annotations
