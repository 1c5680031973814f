// Package serviceorder contains the ServiceOrder aggregate and the Review
// entity attached to completed orders.
//
// Service orders are created in batch when a user checks out a cart of
// services, one order per line item, all starting in the requested status.
// The service's responsible user marks an order performed. Cancellation is
// handled by deleting the order row.
package serviceorder
