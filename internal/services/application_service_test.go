package services

import (
	"testing"

	"tutalink_backend/internal/email"
	"tutalink_backend/internal/models"
	"tutalink_backend/internal/repositories"
	"tutalink_backend/internal/services/dto"
	"tutalink_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingMailer struct {
	sent []*email.Message
}

func (m *recordingMailer) Send(msg *email.Message) error {
	m.sent = append(m.sent, msg)
	return nil
}

func (m *recordingMailer) Close() error { return nil }

func newApplicationFixture(t *testing.T) (ApplicationService, repositories.UserRepository, *recordingMailer) {
	t.Helper()
	store := repositories.NewStore()
	userRepo := repositories.NewUserRepository(store)
	mailer := &recordingMailer{}
	svc := NewApplicationService(repositories.NewApplicationRepository(store), userRepo, mailer)
	return svc, userRepo, mailer
}

func validApplication() *dto.CreateApplicationRequest {
	return &dto.CreateApplicationRequest{
		Department:  "Mathematics",
		YearOfStudy: 3,
		CWA:         3.6,
		Subjects:    []string{"Calculus"},
	}
}

func TestApplicationService_SubmitHappyPath(t *testing.T) {
	svc, users, _ := newApplicationFixture(t)
	learner := createUser(t, users, "learner", models.UserRoleLearner)

	app, err := svc.Submit(learner.ID, validApplication())
	require.NoError(t, err)

	assert.Equal(t, models.ApplicationStatusPending, app.Status)
	assert.Equal(t, learner.ID, app.UserID)
	// The learner has no full name set; the username stands in.
	assert.Equal(t, "learner", app.FullName)
	assert.NotEmpty(t, app.TranscriptPath)
}

func TestApplicationService_SubmitOnlyLearners(t *testing.T) {
	svc, users, _ := newApplicationFixture(t)
	tutor := createUser(t, users, "tutor", models.UserRoleTutor)

	_, err := svc.Submit(tutor.ID, validApplication())
	assert.ErrorIs(t, err, apperrors.ErrOnlyLearnersCanApply)

	// Seeded admin, id 1.
	_, err = svc.Submit(1, validApplication())
	assert.ErrorIs(t, err, apperrors.ErrOnlyLearnersCanApply)
}

func TestApplicationService_SubmitCWAGate(t *testing.T) {
	svc, users, _ := newApplicationFixture(t)
	learner := createUser(t, users, "learner", models.UserRoleLearner)

	req := validApplication()
	req.CWA = 3.39
	_, err := svc.Submit(learner.ID, req)
	assert.ErrorIs(t, err, apperrors.ErrMinimumCWA)

	// Exactly the minimum passes.
	req.CWA = models.MinimumCWA
	_, err = svc.Submit(learner.ID, req)
	assert.NoError(t, err)
}

func TestApplicationService_ResubmissionReplaces(t *testing.T) {
	svc, users, _ := newApplicationFixture(t)
	learner := createUser(t, users, "learner", models.UserRoleLearner)

	first := validApplication()
	_, err := svc.Submit(learner.ID, first)
	require.NoError(t, err)

	second := validApplication()
	second.CWA = 3.9
	_, err = svc.Submit(learner.ID, second)
	require.NoError(t, err)

	apps := svc.ListAll()
	require.Len(t, apps, 1)
	assert.Equal(t, 3.9, apps[0].CWA)
}

func TestApplicationService_ApprovePromotesToTutor(t *testing.T) {
	svc, users, mailer := newApplicationFixture(t)
	learner := createUser(t, users, "learner", models.UserRoleLearner)

	_, err := svc.Submit(learner.ID, validApplication())
	require.NoError(t, err)

	app, err := svc.Approve(learner.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusApproved, app.Status)

	promoted, err := users.FindByID(learner.ID)
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleTutor, promoted.Role)

	require.Len(t, mailer.sent, 1)
	assert.Contains(t, mailer.sent[0].Subject, "approved")
}

func TestApplicationService_RejectLeavesRole(t *testing.T) {
	svc, users, mailer := newApplicationFixture(t)
	learner := createUser(t, users, "learner", models.UserRoleLearner)

	_, err := svc.Submit(learner.ID, validApplication())
	require.NoError(t, err)

	app, err := svc.Reject(learner.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusRejected, app.Status)

	unchanged, err := users.FindByID(learner.ID)
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleLearner, unchanged.Role)
	assert.Len(t, mailer.sent, 1)
}

func TestApplicationService_ApproveUnknownApplication(t *testing.T) {
	svc, _, _ := newApplicationFixture(t)

	_, err := svc.Approve(12345)
	assert.ErrorIs(t, err, apperrors.ErrApplicationNotFound)
}
