package service

import "time"

const (
	defaultSyncInterval  = 30 * time.Second
	defaultSweepInterval = time.Second
	defaultSyncWorkers   = 8

	archiverWorkerCount    = 4
	archiverSleepDuration  = 5 * time.Second
	archiverIdleDuration   = time.Minute
	archiverBackoffSleep   = 10 * time.Second
	exporterFlushSize      = 500
	exporterFlushInterval  = 5 * time.Second
	exporterFlushPerSecond = 10

	creatorMemberName = "Creator"
)
