// Package resilience groups the fault-tolerance helpers used around the
// relational store and the stats cache.
//
//   - circuitbreaker: gobreaker-backed breakers for Postgres and Redis
//   - retry: exponential backoff for waiting on dependencies at start-up
//
// The search gateway uses neither. It makes one engine call per operation
// and reports the failure to its caller.
package resilience
