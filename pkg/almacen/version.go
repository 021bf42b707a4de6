// Package almacen carries module-level metadata.
package almacen

// Version is the module version reported by the CLI.
const Version = "0.1.0"
