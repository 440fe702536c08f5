package repository

var (
	ForResourceQuery  = forResourceQuery
	UpsertPolicyQuery = upsertPolicyQuery
)
