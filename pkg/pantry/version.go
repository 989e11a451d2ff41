// Package pantry holds build metadata for the pantry CLI.
package pantry

// Version is the pantry release version.
const Version = "0.1.0"
