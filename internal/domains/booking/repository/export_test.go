package repository

var CompleteDueQuery = completeDueQuery
