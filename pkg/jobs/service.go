package jobs

import (
	"strings"
	"time"

	"github.com/JurmiThinley/jobtrackr/pkg/model"
	"github.com/JurmiThinley/jobtrackr/pkg/server/store"
)

// ValidationError describes invalid input to a job operation. It maps to a
// 400 response at the HTTP boundary.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// Fields is a partial set of job attributes supplied by a caller. A nil
// pointer means the field was not provided; on update the current value is
// kept.
type Fields struct {
	Title       *string
	Company     *string
	Location    *string
	Status      *string
	DateApplied *string
	Notes       *string
}

// Service enforces validation and ownership scoping over the jobs store.
type Service struct {
	store store.JobsStore
	now   func() time.Time
}

// NewService creates a Service backed by the given store.
func NewService(jobsStore store.JobsStore) *Service {
	return &Service{store: jobsStore, now: time.Now}
}

// List returns all jobs owned by ownerID in insertion order. The result is
// never nil.
func (s *Service) List(ownerID int64) ([]model.Job, error) {
	jobs, err := s.store.ListJobs(ownerID)
	if err != nil {
		return nil, err
	}
	if jobs == nil {
		jobs = []model.Job{}
	}
	return jobs, nil
}

// Create validates fields, applies defaults, and persists a new job owned
// by ownerID. Title and company are required; date_applied must be an ISO
// calendar date when supplied. Defaults: status "applied", date_applied set
// to the creation date.
func (s *Service) Create(ownerID int64, fields Fields) (*model.Job, error) {
	title := trimmed(fields.Title)
	if title == "" {
		return nil, &ValidationError{Msg: "title is required"}
	}
	company := trimmed(fields.Company)
	if company == "" {
		return nil, &ValidationError{Msg: "company is required"}
	}

	date := model.NewDate(s.now())
	if fields.DateApplied != nil && *fields.DateApplied != "" {
		parsed, err := parseDate(*fields.DateApplied)
		if err != nil {
			return nil, err
		}
		date = *parsed
	}

	job := &model.Job{
		Title:       title,
		Company:     company,
		Location:    fields.Location,
		Status:      model.DefaultStatus,
		DateApplied: &date,
		Notes:       fields.Notes,
		UserID:      ownerID,
	}
	if status := trimmed(fields.Status); status != "" {
		job.Status = status
	}

	if err := s.store.CreateJob(job); err != nil {
		return nil, err
	}
	return job, nil
}

// Get retrieves a job owned by ownerID. Returns store.ErrJobNotFound when
// the job is absent or owned by someone else.
func (s *Service) Get(ownerID, id int64) (*model.Job, error) {
	return s.store.FetchJob(id, ownerID)
}

// Update applies a partial patch to a job owned by ownerID. Input is
// validated before the record is fetched, so a bad patch never mutates
// storage. Omitted fields keep their current values.
func (s *Service) Update(ownerID, id int64, fields Fields) (*model.Job, error) {
	var date *model.Date
	if fields.DateApplied != nil {
		parsed, err := parseDate(*fields.DateApplied)
		if err != nil {
			return nil, err
		}
		date = parsed
	}
	if fields.Title != nil && strings.TrimSpace(*fields.Title) == "" {
		return nil, &ValidationError{Msg: "title cannot be empty"}
	}
	if fields.Company != nil && strings.TrimSpace(*fields.Company) == "" {
		return nil, &ValidationError{Msg: "company cannot be empty"}
	}

	job, err := s.store.FetchJob(id, ownerID)
	if err != nil {
		return nil, err
	}

	if fields.Title != nil {
		job.Title = strings.TrimSpace(*fields.Title)
	}
	if fields.Company != nil {
		job.Company = strings.TrimSpace(*fields.Company)
	}
	if fields.Location != nil {
		job.Location = fields.Location
	}
	if fields.Status != nil {
		job.Status = *fields.Status
	}
	if fields.Notes != nil {
		job.Notes = fields.Notes
	}
	if date != nil {
		job.DateApplied = date
	}

	if err := s.store.SaveJob(job); err != nil {
		return nil, err
	}
	return job, nil
}

// Delete permanently removes a job owned by ownerID. Same not-found
// semantics as Get.
func (s *Service) Delete(ownerID, id int64) error {
	return s.store.DeleteJob(id, ownerID)
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func parseDate(s string) (*model.Date, error) {
	parsed, err := model.ParseDate(s)
	if err != nil {
		return nil, &ValidationError{Msg: "date_applied must be an ISO date (YYYY-MM-DD)"}
	}
	return &parsed, nil
}
