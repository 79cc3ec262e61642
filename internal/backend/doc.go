package backend

// Package backend implements the REST client for the remote download service.
// The backend owns all task state; this package only issues read queries and
// lifecycle commands and reports rejections as typed errors. Every request
// carries a generated X-Request-ID for log correlation.
