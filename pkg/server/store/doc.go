// Package store provides storage abstractions for the JobTrackr server.
//
// This package defines interfaces for database operations, allowing the
// server endpoints and the job service to be decoupled from the specific
// database implementation. This enables easier testing with mocks and
// potential support for different storage backends.
//
// # Available Stores
//
//   - UsersStore: account identities and password hashes
//   - JobsStore: job application records, always scoped to an owner
//   - HealthStore: database connectivity checks
//
// # Usage
//
//	store := gorm.NewJobsStore(db)
//	job, err := store.FetchJob(42, ownerID)
//	if err != nil {
//	    if errors.Is(err, store.ErrJobNotFound) {
//	        // Handle not found
//	    }
//	}
package store
