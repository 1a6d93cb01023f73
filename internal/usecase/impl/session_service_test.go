package impl

import (
	"context"
	"testing"
	"time"

	"snapdish/internal/domain/entity"
	domainerrors "snapdish/internal/domain/errors"
	"snapdish/internal/domain/service"
	mockService "snapdish/internal/mocks/service"
	"snapdish/internal/validation"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// sessionServiceFixtures holds all test dependencies for session service tests.
type sessionServiceFixtures struct {
	service   *sessionService
	backend   *mockService.MockBackendAPI
	store     *mockService.MockCredentialStore
	inspector *mockService.MockTokenInspector
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	backend := mockService.NewMockBackendAPI(t)
	store := mockService.NewMockCredentialStore(t)
	inspector := mockService.NewMockTokenInspector(t)

	srv := NewSessionService(backend, store, inspector, validation.New(), discardLogger()).(*sessionService)

	return sessionServiceFixtures{
		service:   srv,
		backend:   backend,
		store:     store,
		inspector: inspector,
	}
}

func TestSessionService_Login_StoresToken(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	creds := entity.Credentials{Email: "a@b.com", Password: "secret1"}

	fx.backend.EXPECT().Token(ctx, creds).Return("T", nil)
	fx.store.EXPECT().Set(ctx, "T").Return(nil)
	fx.inspector.EXPECT().Inspect("T").Return(&entity.Session{Token: "T"})

	session, err := fx.service.Login(ctx, creds)
	require.NoError(t, err)
	assert.Equal(t, "T", session.Token)
}

func TestSessionService_InvalidCredentialsNeverReachTheBackend(t *testing.T) {
	tests := []struct {
		name  string
		creds entity.Credentials
	}{
		{name: "bad email", creds: entity.Credentials{Email: "a@b", Password: "secret1"}},
		{name: "short password", creds: entity.Credentials{Email: "a@b.com", Password: "12345"}},
		{name: "empty", creds: entity.Credentials{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSessionService(t)
			ctx := context.Background()

			_, err := fx.service.Login(ctx, tt.creds)
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

			_, err = fx.service.Register(ctx, tt.creds)
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

			fx.backend.AssertNotCalled(t, "Token", mock.Anything, mock.Anything)
			fx.backend.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
			fx.store.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
		})
	}
}

func TestSessionService_Login_BackendRejects(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	creds := entity.Credentials{Email: "a@b.com", Password: "secret1"}
	rejected := domainerrors.ErrAuthenticationFailed.WithStatus(400, "Invalid email or password")

	fx.backend.EXPECT().Token(ctx, creds).Return("", rejected)

	_, err := fx.service.Login(ctx, creds)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAuthenticationFailed)
	assert.Equal(t, 400, domainerrors.StatusCode(err))
	fx.store.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
}

func TestSessionService_Login_StoreFailure(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	creds := entity.Credentials{Email: "a@b.com", Password: "secret1"}
	diskFull := errors.New("disk full")

	fx.backend.EXPECT().Token(ctx, creds).Return("T", nil)
	fx.store.EXPECT().Set(ctx, "T").Return(diskFull)

	_, err := fx.service.Login(ctx, creds)
	require.Error(t, err)
	assert.ErrorIs(t, err, diskFull)
}

func TestSessionService_Register(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	creds := entity.Credentials{Email: "a@b.com", Password: "secret1"}
	ack := &entity.RegistrationAck{Message: "User registered successfully", UserID: "u-1"}

	fx.backend.EXPECT().Register(ctx, creds).Return(ack, nil)

	got, err := fx.service.Register(ctx, creds)
	require.NoError(t, err)
	assert.Same(t, ack, got)
	fx.store.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
}

func TestSessionService_Logout(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	fx.store.EXPECT().Clear(ctx).Return(nil)

	require.NoError(t, fx.service.Logout(ctx))
}

func TestSessionService_Current(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Second)
	future := now.Add(time.Hour)

	tests := []struct {
		name     string
		setup    func(fx sessionServiceFixtures)
		wantErr  bool
	}{
		{
			name: "no token stored",
			setup: func(fx sessionServiceFixtures) {
				fx.store.EXPECT().Get(mock.Anything).Return("", service.ErrNoCredential)
			},
			wantErr: true,
		},
		{
			name: "store unreadable",
			setup: func(fx sessionServiceFixtures) {
				fx.store.EXPECT().Get(mock.Anything).Return("", errors.New("database is locked"))
			},
			wantErr: true,
		},
		{
			name: "expired token",
			setup: func(fx sessionServiceFixtures) {
				fx.store.EXPECT().Get(mock.Anything).Return("jwt", nil)
				fx.inspector.EXPECT().Inspect("jwt").Return(&entity.Session{Token: "jwt", ExpiresAt: &past})
			},
			wantErr: true,
		},
		{
			name: "valid token",
			setup: func(fx sessionServiceFixtures) {
				fx.store.EXPECT().Get(mock.Anything).Return("jwt", nil)
				fx.inspector.EXPECT().Inspect("jwt").Return(&entity.Session{Token: "jwt", ExpiresAt: &future})
			},
		},
		{
			name: "opaque token",
			setup: func(fx sessionServiceFixtures) {
				fx.store.EXPECT().Get(mock.Anything).Return("T", nil)
				fx.inspector.EXPECT().Inspect("T").Return(&entity.Session{Token: "T"})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSessionService(t)
			fx.service.sessions.now = func() time.Time { return now }
			tt.setup(fx)

			session, err := fx.service.Current(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domainerrors.ErrAuthenticationRequired)

				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, session.Token)
		})
	}
}
