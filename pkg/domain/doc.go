// Package domain holds the records shared between the engine and its
// adapters.
package domain
