package gorm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/JurmiThinley/jobtrackr/pkg/model"
	"github.com/JurmiThinley/jobtrackr/pkg/server/store"
)

// Ensure JobsStore implements store.JobsStore
var _ store.JobsStore = (*JobsStore)(nil)

// JobsStore implements store.JobsStore using GORM
type JobsStore struct {
	db *gorm.DB
}

// NewJobsStore creates a new JobsStore
func NewJobsStore(db *gorm.DB) *JobsStore {
	return &JobsStore{db: db}
}

// ListJobs returns all jobs owned by a user, ordered by id so the sequence
// is stable across calls.
func (s *JobsStore) ListJobs(ownerID int64) ([]model.Job, error) {
	jobs := []model.Job{}
	tx := s.db.Where("user_id = ?", ownerID).Order("id asc").Find(&jobs)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return jobs, nil
}

// FetchJob retrieves a job keyed by (id, owner) in a single query. A job
// owned by someone else is reported exactly like a missing one.
func (s *JobsStore) FetchJob(id, ownerID int64) (*model.Job, error) {
	var job model.Job
	tx := s.db.Where("id = ? AND user_id = ?", id, ownerID).First(&job)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrJobNotFound
		}
		return nil, tx.Error
	}
	return &job, nil
}

// CreateJob persists a new job. The database assigns the id.
func (s *JobsStore) CreateJob(job *model.Job) error {
	return s.db.Create(job).Error
}

// SaveJob writes all fields of an existing job.
func (s *JobsStore) SaveJob(job *model.Job) error {
	return s.db.Save(job).Error
}

// DeleteJob removes a job keyed by (id, owner). The delete itself carries
// the ownership filter, so there is no separate existence check to race
// against.
func (s *JobsStore) DeleteJob(id, ownerID int64) error {
	tx := s.db.Where("id = ? AND user_id = ?", id, ownerID).Delete(&model.Job{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return store.ErrJobNotFound
	}
	return nil
}
