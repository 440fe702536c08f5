package jobs

var (
	SweepLifecycle       = (*Worker).sweepLifecycle
	PublishOutbox        = (*Worker).publishOutbox
	PurgeIdempotencyKeys = (*Worker).purgeIdempotencyKeys
	HandleCalendarBusy   = (*Worker).handleCalendarBusy
)
