package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"tourly/internal/models/db_models"
	"tourly/internal/models/request_models"
	"tourly/pkg/utils"
)

type fakeApplicationRepo struct {
	apps map[primitive.ObjectID]*db_models.GuideApplication
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{apps: make(map[primitive.ObjectID]*db_models.GuideApplication)}
}

func (f *fakeApplicationRepo) FindAll(_ context.Context) ([]db_models.GuideApplication, error) {
	var out []db_models.GuideApplication
	for _, a := range f.apps {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeApplicationRepo) FindByID(_ context.Context, id primitive.ObjectID) (*db_models.GuideApplication, error) {
	a, ok := f.apps[id]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (f *fakeApplicationRepo) FindPendingByEmail(_ context.Context, email string) (*db_models.GuideApplication, error) {
	for _, a := range f.apps {
		if a.Email == email && a.Status == "pending" {
			copied := *a
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeApplicationRepo) Insert(_ context.Context, app *db_models.GuideApplication) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	copied := *app
	copied.ID = id
	f.apps[id] = &copied
	return id, nil
}

func (f *fakeApplicationRepo) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	if _, ok := f.apps[id]; !ok {
		return 0, nil
	}
	delete(f.apps, id)
	return 1, nil
}

func submitRequest(email string) request_models.SubmitApplicationRequest {
	return request_models.SubmitApplicationRequest{
		Name:   "Grace",
		Email:  email,
		Title:  "Mountain trekking guide",
		Reason: "Ten seasons in the Alps",
		CVLink: "https://example.com/cv.pdf",
	}
}

func TestSubmitApplication(t *testing.T) {
	appRepo := newFakeApplicationRepo()
	userRepo := newFakeUserRepo()
	svc := NewGuideApplicationService(appRepo, userRepo)
	ctx := context.Background()

	id, err := svc.Submit(ctx, submitRequest("grace@example.com"))
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	oid, err := primitive.ObjectIDFromHex(id)
	require.NoError(t, err)
	stored, err := appRepo.FindByID(ctx, oid)
	require.NoError(t, err)
	assert.Equal(t, "pending", stored.Status)
	assert.WithinDuration(t, time.Now(), stored.AppliedAt, time.Minute)

	// One pending application per email.
	_, err = svc.Submit(ctx, submitRequest("grace@example.com"))
	assert.ErrorIs(t, err, utils.ErrApplicationPending)

	_, err = svc.Submit(ctx, submitRequest("other@example.com"))
	assert.NoError(t, err)
}

func TestAcceptApplication(t *testing.T) {
	appRepo := newFakeApplicationRepo()
	userRepo := newFakeUserRepo()
	svc := NewGuideApplicationService(appRepo, userRepo)
	userSvc := NewUserService(userRepo)
	ctx := context.Background()

	_, err := userSvc.RegisterUser(ctx, request_models.RegisterUserRequest{
		Name:  "Grace",
		Email: "grace@example.com",
	})
	require.NoError(t, err)

	id, err := svc.Submit(ctx, submitRequest("grace@example.com"))
	require.NoError(t, err)

	err = svc.Accept(ctx, "nope")
	assert.ErrorIs(t, err, utils.ErrInvalidID)

	err = svc.Accept(ctx, primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, utils.ErrApplicationNotFound)

	err = svc.Accept(ctx, id)
	require.NoError(t, err)

	user, err := userRepo.FindByEmail(ctx, "grace@example.com")
	require.NoError(t, err)
	assert.Equal(t, db_models.RoleTourGuide, user.Role)

	oid, _ := primitive.ObjectIDFromHex(id)
	gone, err := appRepo.FindByID(ctx, oid)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestAcceptApplicationKeepsRecordWhenApplicantMissing(t *testing.T) {
	appRepo := newFakeApplicationRepo()
	userRepo := newFakeUserRepo()
	svc := NewGuideApplicationService(appRepo, userRepo)
	ctx := context.Background()

	// Application from an email with no registered account.
	id, err := svc.Submit(ctx, submitRequest("ghost@example.com"))
	require.NoError(t, err)

	err = svc.Accept(ctx, id)
	assert.ErrorIs(t, err, utils.ErrApplicantRoleUpdate)

	// The application survives so accept can be retried after the
	// applicant registers.
	oid, _ := primitive.ObjectIDFromHex(id)
	stored, err := appRepo.FindByID(ctx, oid)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "pending", stored.Status)
}

func TestRejectApplication(t *testing.T) {
	appRepo := newFakeApplicationRepo()
	userRepo := newFakeUserRepo()
	svc := NewGuideApplicationService(appRepo, userRepo)
	ctx := context.Background()

	id, err := svc.Submit(ctx, submitRequest("hank@example.com"))
	require.NoError(t, err)

	err = svc.Reject(ctx, "bad")
	assert.ErrorIs(t, err, utils.ErrInvalidID)

	err = svc.Reject(ctx, primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, utils.ErrApplicationNotFound)

	err = svc.Reject(ctx, id)
	require.NoError(t, err)

	apps, err := svc.ListApplications(ctx)
	require.NoError(t, err)
	assert.Empty(t, apps)

	// Rejection does not touch the user role.
	user, err := userRepo.FindByEmail(ctx, "hank@example.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}
