package repository

var DeleteWindowQuery = deleteWindowQuery
