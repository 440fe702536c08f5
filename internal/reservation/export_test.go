package reservation

var (
	MapError   = mapError
	PurgeQuery = purgeQuery
)
