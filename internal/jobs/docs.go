// Package jobs provides scheduled background tasks for the order subsystem.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. NotificationRedeliveryJob - Periodically re-enqueues notification
// messages whose initial publish to the mail queue failed.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(dispatcher, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The redelivery job delegates retry bookkeeping to the notification
// dispatcher: messages that keep failing are dropped there after the attempt
// limit, so the job itself never errors on business conditions.
package jobs
