package control

// Package control implements the task lifecycle coordinator: the polling
// loop that mirrors backend task state into the local stores, the command
// dispatcher that mutates backend state and refreshes the mirror, and the
// delete-then-start retry protocol. Commands never write the stores
// directly; every visible update flows through a refresh.
