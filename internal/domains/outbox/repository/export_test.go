package repository

var (
	InsertQuery       = insertQuery
	LeasePendingQuery = leasePendingQuery
)
