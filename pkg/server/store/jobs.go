package store

import (
	"errors"

	"github.com/JurmiThinley/jobtrackr/pkg/model"
)

// ErrJobNotFound is returned when a job does not exist or belongs to a
// different owner. The two cases are deliberately indistinguishable so that
// one user cannot probe for another user's record ids.
var ErrJobNotFound = errors.New("job not found")

// JobsStore abstracts job application storage operations. Every lookup is
// scoped to the owning user in a single query; there is no unscoped fetch.
type JobsStore interface {
	// ListJobs returns all jobs owned by a user in insertion order
	ListJobs(ownerID int64) ([]model.Job, error)

	// FetchJob retrieves a job by id and owner
	FetchJob(id, ownerID int64) (*model.Job, error)

	// CreateJob persists a new job and assigns its id
	CreateJob(job *model.Job) error

	// SaveJob writes all fields of an existing job
	SaveJob(job *model.Job) error

	// DeleteJob permanently removes a job by id and owner
	DeleteJob(id, ownerID int64) error
}
