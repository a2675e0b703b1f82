package endpoints

import (
	"github.com/stretchr/testify/mock"

	"github.com/JurmiThinley/jobtrackr/pkg/model"
)

// MockJobsStore implements store.JobsStore for testing using testify/mock
type MockJobsStore struct {
	mock.Mock
}

func NewMockJobsStore() *MockJobsStore {
	return &MockJobsStore{}
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

// MockUsersStore implements store.UsersStore for testing using testify/mock
type MockUsersStore struct {
	mock.Mock
}

func NewMockUsersStore() *MockUsersStore {
	return &MockUsersStore{}
}

func (m *MockUsersStore) CreateUser(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUsersStore) FetchUserByUsername(username string) (*model.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUsersStore) FetchUserByID(id int64) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUsersStore) UpdatePassword(username, passwordHash string) error {
	args := m.Called(username, passwordHash)
	return args.Error(0)
}

// MockHealthStore implements store.HealthStore for testing using testify/mock
type MockHealthStore struct {
	mock.Mock
}

func NewMockHealthStore() *MockHealthStore {
	return &MockHealthStore{}
}

func (m *MockHealthStore) CheckConnectivity() error {
	args := m.Called()
	return args.Error(0)
}
