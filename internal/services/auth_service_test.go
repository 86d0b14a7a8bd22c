package services

import (
	"testing"
	"time"

	"farmsync/internal/redis"
	"farmsync/internal/repository"
	"farmsync/internal/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthFixture(t *testing.T) (AuthService, IdentityService, WorkerService, string) {
	t.Helper()

	db := newTestDB(t)
	workerRepo := repository.NewWorkerRepository(db)
	farmRepo := repository.NewFarmRepository(db)
	identities := NewIdentityService(repository.NewIdentityRepository(db))
	workers := NewWorkerService(workerRepo, farmRepo, identities, "workers.farmsync.local", zap.NewNop())
	auth := NewAuthService(identities, workerRepo, newMemSessionStore(), time.Hour, zap.NewNop())

	ownerID := uuid.NewString()
	farms := NewFarmService(farmRepo)
	farm, err := farms.CreateFarm(ownerID, validation.FarmInput{
		Name:             "Far Hills",
		FarmType:         "broilers",
		LocationDistrict: "Wakiso",
		StartDate:        "2024-06-01",
	})
	require.NoError(t, err)

	return auth, identities, workers, farm.ID
}

func TestSignInRoutesWorkerUsernames(t *testing.T) {
	auth, _, workers, farmID := newAuthFixture(t)

	in := validation.WorkerInput{
		FullName:              "Jane Apio",
		Role:                  "worker",
		Gender:                "female",
		Age:                   22,
		NextOfKinName:         "Mary Apio",
		NextOfKinRelationship: "parent",
		NextOfKinPhone:        "+256700000001",
	}
	worker, creds, err := workers.CreateWorker(farmID, uuid.NewString(), in)
	require.NoError(t, err)
	require.Equal(t, "jane_far001", creds.Username)

	token, session, err := auth.SignIn(creds.Username, creds.Password)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.Equal(t, redis.KindWorker, session.Kind)
	assert.Equal(t, worker.ID, session.ID)
	assert.Equal(t, "jane_far001", session.Username)
	assert.Equal(t, "Jane Apio", session.FullName)
	assert.Equal(t, "worker", session.Role)
	assert.Equal(t, farmID, session.FarmID)
}

func TestSignInRoutesOwnerEmails(t *testing.T) {
	auth, identities, _, _ := newAuthFixture(t)

	_, err := identities.SignUp("jane@example.com", "secret123", "Jane Owner", "")
	require.NoError(t, err)

	token, session, err := auth.SignIn("jane@example.com", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.Equal(t, redis.KindOwner, session.Kind)
	assert.Equal(t, "jane@example.com", session.Email)
	assert.Empty(t, session.FarmID)
}

func TestSignInRejectsBadCredentials(t *testing.T) {
	auth, identities, workers, farmID := newAuthFixture(t)

	_, err := identities.SignUp("jane@example.com", "secret123", "Jane Owner", "")
	require.NoError(t, err)

	in := validation.WorkerInput{
		FullName:              "Jane Apio",
		Role:                  "worker",
		Gender:                "female",
		Age:                   22,
		NextOfKinName:         "Mary Apio",
		NextOfKinRelationship: "parent",
		NextOfKinPhone:        "+256700000001",
	}
	_, creds, err := workers.CreateWorker(farmID, uuid.NewString(), in)
	require.NoError(t, err)

	_, _, err = auth.SignIn("jane@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = auth.SignIn(creds.Username, "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = auth.SignIn("nobody_far001", creds.Password)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignInRejectsInactiveWorker(t *testing.T) {
	auth, _, workers, farmID := newAuthFixture(t)

	in := validation.WorkerInput{
		FullName:              "Jane Apio",
		Role:                  "worker",
		Gender:                "female",
		Age:                   22,
		NextOfKinName:         "Mary Apio",
		NextOfKinRelationship: "parent",
		NextOfKinPhone:        "+256700000001",
	}
	worker, creds, err := workers.CreateWorker(farmID, uuid.NewString(), in)
	require.NoError(t, err)

	inactive := false
	in.IsActive = &inactive
	_, err = workers.UpdateWorker(worker.ID, in)
	require.NoError(t, err)

	_, _, err = auth.SignIn(creds.Username, creds.Password)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignOutInvalidatesSession(t *testing.T) {
	auth, identities, _, _ := newAuthFixture(t)

	_, err := identities.SignUp("jane@example.com", "secret123", "Jane Owner", "")
	require.NoError(t, err)

	token, _, err := auth.SignIn("jane@example.com", "secret123")
	require.NoError(t, err)

	_, err = auth.Current(token)
	require.NoError(t, err)

	require.NoError(t, auth.SignOut(token))

	_, err = auth.Current(token)
	assert.ErrorIs(t, err, redis.ErrSessionNotFound)
}
