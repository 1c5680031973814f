// Package notifications contains the outgoing email message model and the
// dispatcher that pushes messages to the mail queue after a business
// transaction commits. Messages that fail to enqueue are buffered for
// redelivery by a background job.
package notifications
