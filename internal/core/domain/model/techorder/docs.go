// Package techorder contains the TechnologyOrder aggregate: a buyer's formal
// request to acquire a technology listed on the platform.
//
// The aggregate owns the order lifecycle:
//
//	open ──┬──> closed   (seller closes with a negotiated unit value)
//	       └──> canceled (either party cancels with a reason)
//
// Closed and canceled are terminal. Orders are never re-opened.
package techorder
