package store

// Package store holds the client's in-memory mirror of backend state: the
// ordered task collection and the aggregate stats snapshot. Only the control
// service writes here, always from a fresh successful backend read.
