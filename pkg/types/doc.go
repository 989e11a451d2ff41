// Package types defines the stock mapping, operation outcomes, journal
// entries, the persistence Backend interface, configuration, and the
// standard errors for the Pantry inventory store.
package types
