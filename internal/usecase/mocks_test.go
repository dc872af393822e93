package usecase_test

import (
	"context"
	"time"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) List(ctx context.Context, limit, offset int) ([]domain.User, int64, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Get(1).(int64), args.Error(2)
}
func (m *MockUserRepo) SetActive(ctx context.Context, id string, active bool) error {
	return m.Called(ctx, id, active).Error(0)
}
func (m *MockUserRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) Search(ctx context.Context, filter domain.JobFilter, limit, offset int) ([]domain.Job, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	var jobs []domain.Job
	if args.Get(0) != nil {
		jobs = args.Get(0).([]domain.Job)
	}
	return jobs, args.Get(1).(int64), args.Error(2)
}
func (m *MockJobRepo) FetchByOwner(ctx context.Context, ownerID string, limit, offset int) ([]domain.Job, int64, error) {
	args := m.Called(ctx, ownerID, limit, offset)
	var jobs []domain.Job
	if args.Get(0) != nil {
		jobs = args.Get(0).([]domain.Job)
	}
	return jobs, args.Get(1).(int64), args.Error(2)
}
func (m *MockJobRepo) Update(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockJobRepo) SetActive(ctx context.Context, id string, active bool) error {
	return m.Called(ctx, id, active).Error(0)
}
func (m *MockJobRepo) IncrementViewCount(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockJobRepo) IncrementApplicationCount(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) GetByUserID(ctx context.Context, userID string) ([]domain.Application, error) {
	args := m.Called(ctx, userID)
	var apps []domain.Application
	if args.Get(0) != nil {
		apps = args.Get(0).([]domain.Application)
	}
	return apps, args.Error(1)
}
func (m *MockApplicationRepo) GetByJobID(ctx context.Context, jobID string) ([]domain.Application, error) {
	args := m.Called(ctx, jobID)
	var apps []domain.Application
	if args.Get(0) != nil {
		apps = args.Get(0).([]domain.Application)
	}
	return apps, args.Error(1)
}
func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return m.Called(ctx, id, status).Error(0)
}
func (m *MockApplicationRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	return m.Called(ctx, n).Error(0)
}
func (m *MockNotificationRepo) GetByID(ctx context.Context, id string) (*domain.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}
func (m *MockNotificationRepo) GetByUserID(ctx context.Context, userID string, unreadOnly bool, limit, offset int) ([]domain.Notification, int64, error) {
	args := m.Called(ctx, userID, unreadOnly, limit, offset)
	var ns []domain.Notification
	if args.Get(0) != nil {
		ns = args.Get(0).([]domain.Notification)
	}
	return ns, args.Get(1).(int64), args.Error(2)
}
func (m *MockNotificationRepo) MarkRead(ctx context.Context, id string, readAt time.Time) error {
	return m.Called(ctx, id, readAt).Error(0)
}
func (m *MockNotificationRepo) MarkAllRead(ctx context.Context, userID string, readAt time.Time) error {
	return m.Called(ctx, userID, readAt).Error(0)
}
func (m *MockNotificationRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockJobAlertRepo struct {
	mock.Mock
}

func (m *MockJobAlertRepo) Create(ctx context.Context, alert *domain.JobAlert) error {
	return m.Called(ctx, alert).Error(0)
}
func (m *MockJobAlertRepo) GetByID(ctx context.Context, id string) (*domain.JobAlert, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobAlert), args.Error(1)
}
func (m *MockJobAlertRepo) GetByUserID(ctx context.Context, userID string, activeOnly bool) ([]domain.JobAlert, error) {
	args := m.Called(ctx, userID, activeOnly)
	var alerts []domain.JobAlert
	if args.Get(0) != nil {
		alerts = args.Get(0).([]domain.JobAlert)
	}
	return alerts, args.Error(1)
}
func (m *MockJobAlertRepo) Update(ctx context.Context, alert *domain.JobAlert) error {
	return m.Called(ctx, alert).Error(0)
}
func (m *MockJobAlertRepo) MarkTriggered(ctx context.Context, id string, at time.Time, matched int) error {
	return m.Called(ctx, id, at, matched).Error(0)
}
func (m *MockJobAlertRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockProfileRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
func (m *MockProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
func (m *MockProfileRepo) Update(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockProfileRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockCompanyRepo struct {
	mock.Mock
}

func (m *MockCompanyRepo) Create(ctx context.Context, company *domain.Company) error {
	return m.Called(ctx, company).Error(0)
}
func (m *MockCompanyRepo) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}
func (m *MockCompanyRepo) List(ctx context.Context, limit, offset int) ([]domain.Company, int64, error) {
	args := m.Called(ctx, limit, offset)
	var companies []domain.Company
	if args.Get(0) != nil {
		companies = args.Get(0).([]domain.Company)
	}
	return companies, args.Get(1).(int64), args.Error(2)
}
func (m *MockCompanyRepo) Update(ctx context.Context, company *domain.Company) error {
	return m.Called(ctx, company).Error(0)
}
func (m *MockCompanyRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockCompanyRepo) SetVerification(ctx context.Context, id, status string, verified bool) error {
	return m.Called(ctx, id, status, verified).Error(0)
}

type MockVerificationRepo struct {
	mock.Mock
}

func (m *MockVerificationRepo) Create(ctx context.Context, v *domain.CompanyVerification) error {
	return m.Called(ctx, v).Error(0)
}
func (m *MockVerificationRepo) GetByID(ctx context.Context, id string) (*domain.CompanyVerification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyVerification), args.Error(1)
}
func (m *MockVerificationRepo) GetByCompanyID(ctx context.Context, companyID string) (*domain.CompanyVerification, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyVerification), args.Error(1)
}
func (m *MockVerificationRepo) ListByStatus(ctx context.Context, status string, limit, offset int) ([]domain.CompanyVerification, int64, error) {
	args := m.Called(ctx, status, limit, offset)
	var vs []domain.CompanyVerification
	if args.Get(0) != nil {
		vs = args.Get(0).([]domain.CompanyVerification)
	}
	return vs, args.Get(1).(int64), args.Error(2)
}
func (m *MockVerificationRepo) UpdateStatus(ctx context.Context, id, status string, notes *string, verifiedBy string) error {
	return m.Called(ctx, id, status, notes, verifiedBy).Error(0)
}

type MockSavedJobRepo struct {
	mock.Mock
}

func (m *MockSavedJobRepo) Create(ctx context.Context, saved *domain.SavedJob) error {
	return m.Called(ctx, saved).Error(0)
}
func (m *MockSavedJobRepo) GetByUserID(ctx context.Context, userID string) ([]domain.SavedJob, error) {
	args := m.Called(ctx, userID)
	var saved []domain.SavedJob
	if args.Get(0) != nil {
		saved = args.Get(0).([]domain.SavedJob)
	}
	return saved, args.Error(1)
}
func (m *MockSavedJobRepo) Delete(ctx context.Context, userID, jobID string) error {
	return m.Called(ctx, userID, jobID).Error(0)
}

type MockResumeRepo struct {
	mock.Mock
}

func (m *MockResumeRepo) Create(ctx context.Context, resume *domain.Resume) error {
	return m.Called(ctx, resume).Error(0)
}
func (m *MockResumeRepo) GetByID(ctx context.Context, id string) (*domain.Resume, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resume), args.Error(1)
}
func (m *MockResumeRepo) GetByUserID(ctx context.Context, userID string) ([]domain.Resume, error) {
	args := m.Called(ctx, userID)
	var resumes []domain.Resume
	if args.Get(0) != nil {
		resumes = args.Get(0).([]domain.Resume)
	}
	return resumes, args.Error(1)
}
func (m *MockResumeRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
