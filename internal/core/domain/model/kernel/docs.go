// Package kernel contains shared value objects used across all domain
// aggregates. Kernel types are immutable, validated on construction, and
// carry no behavior specific to any single aggregate.
package kernel
