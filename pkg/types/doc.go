// Package types defines the weight-class enumeration, stash and pattern
// entities, provider interfaces, and standard error types for the
// StitchMatch matching engine.
package types
