// Package jobs provides the scheduled background tasks of the storefront.
//
// Jobs are built on github.com/robfig/cron/v3 with an "@every" schedule:
//
//  1. AssignmentTimeoutJob - sweeps deliveries whose rider has not accepted
//     within the SLA window and reassigns them
//  2. PendingDispatchJob - assigns riders to paid home deliveries that found
//     nobody free when they were paid
//
// # Usage
//
//	jobManager, err := jobs.NewJobManager(reclaimHandler, assignPendingHandler, jobs.Schedule{
//		SLASweepInterval: 30 * time.Second,
//		DispatchInterval: 15 * time.Second,
//		DispatchBatch:    50,
//	}, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A run never overlaps the previous one of the same job. Errors are logged and
// the next tick retries; one failing order does not stop the rest of a sweep.
// StopAll cancels the context of an in-flight run and waits for it.
package jobs
