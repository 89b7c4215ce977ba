// Package ports defines the driven-side interfaces of the engine and the
// shared contract suites their implementations must satisfy.
package ports
