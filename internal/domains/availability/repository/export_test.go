package repository

var (
	BookingsQuery    = bookingsQuery
	ExternalQuery    = externalQuery
	CountPerDayQuery = countPerDayQuery
)
