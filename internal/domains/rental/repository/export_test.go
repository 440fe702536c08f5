package repository

var (
	HoldsQuery       = holdsQuery
	MarkOverdueQuery = markOverdueQuery
)
