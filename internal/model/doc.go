package model

// Package model defines domain data structures shared across the app: download
// tasks as reported by the backend, status enums, and the aggregate stats
// snapshot. Structures are designed for direct binding in the UI and map
// one-to-one onto the backend's JSON wire format.
