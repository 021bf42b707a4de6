// Package types defines the adapter contract, record and query types,
// expense normalization rules, and standard errors for the almacen
// storage layer.
//
// UI code talks to the storage facade in pkg/storage; the facade talks to
// one of the adapters (local SQLite cache, Redis shared cache, or the
// remote HTTP service) through the interfaces declared here.
package types
