// Package services provides domain services that coordinate business rules
// across multiple domain entities. It implements logic that does not
// naturally belong to a single aggregate root.
//
// The package includes:
//   - AccessEvaluator: decides whether a user may perform an operation class,
//     combining the role capability policy with the resource ownership override
package services
