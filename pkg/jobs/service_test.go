package jobs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/JurmiThinley/jobtrackr/pkg/model"
	"github.com/JurmiThinley/jobtrackr/pkg/server/store"
)

// MockJobsStore implements store.JobsStore using testify/mock
type MockJobsStore struct {
	mock.Mock
}

func (m *MockJobsStore) ListJobs(ownerID int64) ([]model.Job, error) {
	args := m.Called(ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Job), args.Error(1)
}

func (m *MockJobsStore) FetchJob(id, ownerID int64) (*model.Job, error) {
	args := m.Called(id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Job), args.Error(1)
}

func (m *MockJobsStore) CreateJob(job *model.Job) error {
	args := m.Called(job)
	return args.Error(0)
}

func (m *MockJobsStore) SaveJob(job *model.Job) error {
	args := m.Called(job)
	return args.Error(0)
}

func (m *MockJobsStore) DeleteJob(id, ownerID int64) error {
	args := m.Called(id, ownerID)
	return args.Error(0)
}

func strPtr(s string) *string {
	return &s
}

func TestCreate(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		jobsStore := &MockJobsStore{}
		jobsStore.On("CreateJob", mock.AnythingOfType("*model.Job")).Return(nil)

		service := NewService(jobsStore)

		job, err := service.Create(1, Fields{
			Title:   strPtr("Engineer"),
			Company: strPtr("Acme"),
		})
		require.NoError(t, err)

		assert.Equal(t, "Engineer", job.Title)
		assert.Equal(t, "Acme", job.Company)
		assert.Equal(t, model.DefaultStatus, job.Status)
		assert.Equal(t, int64(1), job.UserID)
		require.NotNil(t, job.DateApplied)
	})

	t.Run("respects supplied status and date", func(t *testing.T) {
		jobsStore := &MockJobsStore{}
		jobsStore.On("CreateJob", mock.AnythingOfType("*model.Job")).Return(nil)

		service := NewService(jobsStore)

		job, err := service.Create(1, Fields{
			Title:       strPtr("Engineer"),
			Company:     strPtr("Acme"),
			Status:      strPtr("interview"),
			DateApplied: strPtr("2025-02-03"),
		})
		require.NoError(t, err)

		assert.Equal(t, "interview", job.Status)
		assert.Equal(t, "2025-02-03", job.DateApplied.String())
	})

	t.Run("requires title", func(t *testing.T) {
		jobsStore := &MockJobsStore{}
		service := NewService(jobsStore)

		_, err := service.Create(1, Fields{Company: strPtr("Acme")})

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		jobsStore.AssertNotCalled(t, "CreateJob", mock.Anything)
	})

	t.Run("requires company", func(t *testing.T) {
		jobsStore := &MockJobsStore{}
		service := NewService(jobsStore)

		_, err := service.Create(1, Fields{Title: strPtr("Engineer")})

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
	})

	t.Run("whitespace-only title is rejected", func(t *testing.T) {
		jobsStore := &MockJobsStore{}
		service := NewService(jobsStore)

		_, err := service.Create(1, Fields{
			Title:   strPtr("   "),
			Company: strPtr("Acme"),
		})

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
	})

	t.Run("rejects out-of-range date", func(t *testing.T) {
		jobsStore := &MockJobsStore{}
		service := NewService(jobsStore)

		_, err := service.Create(1, Fields{
			Title:       strPtr("Engineer"),
			Company:     strPtr("Acme"),
			DateApplied: strPtr("2024-13-40"),
		})

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		jobsStore.AssertNotCalled(t, "CreateJob", mock.Anything)
	})
}

func TestList(t *testing.T) {
	t.Run("nil from store becomes empty slice", func(t *testing.T) {
		jobsStore := &MockJobsStore{}
		jobsStore.On("ListJobs", int64(1)).Return([]model.Job(nil), nil)

		service := NewService(jobsStore)

		jobs, err := service.List(1)
		require.NoError(t, err)
		assert.NotNil(t, jobs)
		assert.Empty(t, jobs)
	})

	t.Run("store error propagates", func(t *testing.T) {
		jobsStore := &MockJobsStore{}
		jobsStore.On("ListJobs", int64(1)).Return(nil, errors.New("boom"))

		service := NewService(jobsStore)

		_, err := service.List(1)
		assert.Error(t, err)
	})
}

func TestUpdate(t *testing.T) {
	existing := func() *model.Job {
		date, _ := model.ParseDate("2025-01-10")
		return &model.Job{
			ID:          7,
			Title:       "Engineer",
			Company:     "Acme",
			Status:      "applied",
			DateApplied: &date,
			UserID:      1,
		}
	}

	t.Run("partial patch keeps other fields", func(t *testing.T) {
		jobsStore := &MockJobsStore{}
		jobsStore.On("FetchJob", int64(7), int64(1)).Return(existing(), nil)
		jobsStore.On("SaveJob", mock.AnythingOfType("*model.Job")).Return(nil)

		service := NewService(jobsStore)

		job, err := service.Update(1, 7, Fields{Status: strPtr("offer")})
		require.NoError(t, err)

		assert.Equal(t, "offer", job.Status)
		assert.Equal(t, "Engineer", job.Title)
		assert.Equal(t, "2025-01-10", job.DateApplied.String())
	})

	t.Run("bad date never touches the store", func(t *testing.T) {
		jobsStore := &MockJobsStore{}
		service := NewService(jobsStore)

		_, err := service.Update(1, 7, Fields{DateApplied: strPtr("not-a-date")})

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		jobsStore.AssertNotCalled(t, "FetchJob", mock.Anything, mock.Anything)
		jobsStore.AssertNotCalled(t, "SaveJob", mock.Anything)
	})

	t.Run("empty title never touches the store", func(t *testing.T) {
		jobsStore := &MockJobsStore{}
		service := NewService(jobsStore)

		_, err := service.Update(1, 7, Fields{Title: strPtr("  ")})

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		jobsStore.AssertNotCalled(t, "FetchJob", mock.Anything, mock.Anything)
	})

	t.Run("missing job propagates not found", func(t *testing.T) {
		jobsStore := &MockJobsStore{}
		jobsStore.On("FetchJob", int64(99), int64(1)).Return(nil, store.ErrJobNotFound)

		service := NewService(jobsStore)

		_, err := service.Update(1, 99, Fields{Status: strPtr("offer")})
		assert.ErrorIs(t, err, store.ErrJobNotFound)
	})
}

func TestDelete(t *testing.T) {
	jobsStore := &MockJobsStore{}
	jobsStore.On("DeleteJob", int64(7), int64(1)).Return(nil)
	jobsStore.On("DeleteJob", int64(99), int64(1)).Return(store.ErrJobNotFound)

	service := NewService(jobsStore)

	assert.NoError(t, service.Delete(1, 7))
	assert.ErrorIs(t, service.Delete(1, 99), store.ErrJobNotFound)
}

func TestGet(t *testing.T) {
	jobsStore := &MockJobsStore{}
	jobsStore.On("FetchJob", int64(7), int64(1)).Return(&model.Job{ID: 7, UserID: 1}, nil)
	jobsStore.On("FetchJob", int64(7), int64(2)).Return(nil, store.ErrJobNotFound)

	service := NewService(jobsStore)

	job, err := service.Get(1, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), job.ID)

	// Someone else's job is indistinguishable from a missing one
	_, err = service.Get(2, 7)
	assert.ErrorIs(t, err, store.ErrJobNotFound)
}
