package repository

// Package repository contains data access layer abstractions.
// Implementations can live in subpackages (e.g., postgres) inside this directory.

// PageQuery holds limit/offset pagination parameters plus an optional
// case-insensitive search term.
type PageQuery struct {
	Limit  int
	Offset int
	Search string
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
