package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"snapdish/config"
	"snapdish/internal/delivery/http/middleware"
	"snapdish/internal/delivery/http/router"
	"snapdish/internal/delivery/http/router/handler"
	"snapdish/internal/domain/entity"
	domainerrors "snapdish/internal/domain/errors"
	"snapdish/internal/domain/service"
	"snapdish/internal/infra/api"
	"snapdish/internal/infra/auth"
	"snapdish/internal/infra/classifier"
	"snapdish/internal/infra/credential"
	"snapdish/internal/infra/imagestore"
	"snapdish/internal/infra/persistence/memory"
	"snapdish/internal/usecase"
	"snapdish/internal/usecase/impl"
	"snapdish/internal/validation"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"golang.org/x/crypto/bcrypt"
)

var jpegBytes = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00, 0x01, 0xFF, 0xD9}

// testApp is a development backend behind httptest with a client wired against it.
type testApp struct {
	url            string
	store          *credential.MemoryStore
	images         *imagestore.BlobStore
	sessions       usecase.SessionUsecase
	meals          usecase.MealUsecase
	photos         usecase.PhotoUsecase
	classification usecase.ClassificationUsecase
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		API:     &config.APIConfig{Timeout: 5 * time.Second, UserAgent: "snapdish-test"},
		Storage: &config.StorageConfig{ImageDir: t.TempDir(), CredentialsPath: "unused", Timezone: "UTC"},
		Backend: &config.BackendConfig{
			TokenSecret: "integration-secret",
			TokenTTL:    time.Hour,
			BcryptCost:  bcrypt.MinCost,
		},
	}

	issuer, err := auth.NewJWTIssuer(cfg)
	require.NoError(t, err)
	validate := validation.New()

	accounts := impl.NewAccountService(memory.NewUserRepository(), auth.NewBcryptHasher(cfg), issuer, validate, logger)
	meals := memory.NewMealRepository()
	transactions := memory.NewTransactionManager(meals, memory.NewIngredientRepository())
	mealLog := impl.NewMealLogService(meals, transactions, validate, logger)
	mealHandler, err := handler.NewMealHandler(mealLog, cfg, logger)
	require.NoError(t, err)

	lc := fxtest.NewLifecycle(t)
	server, err := NewServer(HTTPParams{
		Lifecycle: lc,
		Config:    cfg,
		Logger:    logger,
		RouterParams: router.RouterParams{
			AuthHandler:     handler.NewAuthHandler(accounts, logger),
			ClassifyHandler: handler.NewClassifyHandler(classifier.NewStub(logger), logger),
			MealHandler:     mealHandler,
			AuthMiddleware:  middleware.NewAuthMiddleware(accounts),
		},
		ErrorMiddleware: middleware.NewErrorMiddleware(logger),
	})
	require.NoError(t, err)

	backend := httptest.NewServer(server.(*httpServer).server)
	t.Cleanup(backend.Close)

	cfg.API.BaseURL = backend.URL
	client, err := api.NewClient(api.ClientParams{Config: cfg, Logger: logger})
	require.NoError(t, err)

	images, err := imagestore.NewFileStore(cfg.Storage.ImageDir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = images.Close() })

	store := credential.NewMemoryStore()
	inspector := auth.NewTokenInspector()

	return &testApp{
		url:            backend.URL,
		store:          store,
		images:         images,
		sessions:       impl.NewSessionService(client, store, inspector, validate, logger),
		meals:          impl.NewMealService(client, images, store, inspector, validate, logger),
		photos:         impl.NewPhotoService(images, logger),
		classification: impl.NewClassificationService(client, images, logger),
	}
}

func TestEndToEnd_MealJourney(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	ctx := context.Background()
	creds := entity.Credentials{Email: "a@b.com", Password: "secret1"}

	ack, err := app.sessions.Register(ctx, creds)
	require.NoError(t, err)
	assert.Equal(t, "User registered successfully", ack.Message)
	assert.NotEmpty(t, ack.UserID)

	session, err := app.sessions.Login(ctx, creds)
	require.NoError(t, err)
	require.NotNil(t, session.ExpiresAt)
	assert.True(t, session.ExpiresAt.After(time.Now()))

	stored, err := app.store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, session.Token, stored)

	photo, err := app.photos.Capture(ctx, jpegBytes)
	require.NoError(t, err)

	guess, err := app.classification.Classify(ctx, photo)
	require.NoError(t, err)
	assert.NotEmpty(t, guess.PredictedClass)
	assert.GreaterOrEqual(t, guess.EstimatedCalories, 50)
	assert.Greater(t, guess.Probability, 0.0)

	eaten := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	meal, err := app.meals.AddMeal(ctx, &entity.MealUpload{Photo: photo, Name: "Salad", Calories: 250, Time: eaten})
	require.NoError(t, err)
	assert.NotEmpty(t, meal.ID)
	assert.Equal(t, photo, meal.Image)

	require.NoError(t, app.photos.Discard(ctx, photo))

	result, err := app.meals.AddIngredients(ctx, meal.ID, []entity.Ingredient{{Name: "Croutons", Calories: 80}})
	require.NoError(t, err)
	assert.Len(t, result.IngredientIDs, 1)
	assert.Equal(t, 330, result.Calories)

	name := "Caesar salad"
	require.NoError(t, app.meals.UpdateMeal(ctx, meal.ID, entity.MealPatch{Name: &name}))

	meals, err := app.meals.ListMeals(ctx)
	require.NoError(t, err)
	require.Len(t, meals, 1)

	listed := meals[0]
	assert.Equal(t, meal.ID, listed.ID)
	assert.Equal(t, ack.UserID, listed.UserID)
	assert.Equal(t, "Caesar salad", listed.Name)
	assert.Equal(t, 330, listed.Calories)
	assert.Equal(t, result.IngredientIDs, listed.IngredientIDs)
	assert.True(t, eaten.Equal(listed.Time), "got %s", listed.Time)

	require.NotEmpty(t, listed.Image)
	assert.NotEqual(t, photo, listed.Image)
	data, err := app.images.Read(ctx, listed.Image)
	require.NoError(t, err)
	assert.Equal(t, jpegBytes, data)

	require.NoError(t, app.sessions.Logout(ctx))
	_, err = app.meals.ListMeals(ctx)
	assert.True(t, errors.Is(err, domainerrors.ErrAuthenticationRequired))
}

func TestEndToEnd_LoginRejected(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	ctx := context.Background()

	_, err := app.sessions.Register(ctx, entity.Credentials{Email: "a@b.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = app.sessions.Login(ctx, entity.Credentials{Email: "a@b.com", Password: "wrong-secret"})
	require.True(t, errors.Is(err, domainerrors.ErrAuthenticationFailed))
	assert.Equal(t, nethttp.StatusBadRequest, domainerrors.StatusCode(err))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Invalid email or password", appErr.Details())

	_, err = app.store.Get(ctx)
	assert.ErrorIs(t, err, service.ErrNoCredential)
}

func TestEndToEnd_DuplicateRegistration(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	ctx := context.Background()
	creds := entity.Credentials{Email: "a@b.com", Password: "secret1"}

	_, err := app.sessions.Register(ctx, creds)
	require.NoError(t, err)

	_, err = app.sessions.Register(ctx, creds)
	require.True(t, errors.Is(err, domainerrors.ErrRegistrationFailed))
	assert.Equal(t, nethttp.StatusBadRequest, domainerrors.StatusCode(err))
}

func TestEndToEnd_UploadRejectedCarriesStatus(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	ctx := context.Background()

	// An opaque token the backend never issued.
	require.NoError(t, app.store.Set(ctx, "T"))

	photo, err := app.photos.Capture(ctx, jpegBytes)
	require.NoError(t, err)

	_, err = app.meals.AddMeal(ctx, &entity.MealUpload{Photo: photo, Name: "Salad", Calories: 250, Time: time.Now()})
	require.True(t, errors.Is(err, domainerrors.ErrMealUploadFailed))
	assert.Equal(t, nethttp.StatusUnauthorized, domainerrors.StatusCode(err))
}

func TestEndToEnd_ForeignMealIsForbidden(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	ctx := context.Background()

	owner := entity.Credentials{Email: "owner@b.com", Password: "secret1"}
	other := entity.Credentials{Email: "other@b.com", Password: "secret2"}
	for _, creds := range []entity.Credentials{owner, other} {
		_, err := app.sessions.Register(ctx, creds)
		require.NoError(t, err)
	}

	_, err := app.sessions.Login(ctx, owner)
	require.NoError(t, err)
	photo, err := app.photos.Capture(ctx, jpegBytes)
	require.NoError(t, err)
	meal, err := app.meals.AddMeal(ctx, &entity.MealUpload{Photo: photo, Name: "Soup", Calories: 120, Time: time.Now()})
	require.NoError(t, err)

	_, err = app.sessions.Login(ctx, other)
	require.NoError(t, err)

	name := "Stolen soup"
	err = app.meals.UpdateMeal(ctx, meal.ID, entity.MealPatch{Name: &name})
	require.True(t, errors.Is(err, domainerrors.ErrMealUpdateFailed))
	assert.Equal(t, nethttp.StatusForbidden, domainerrors.StatusCode(err))

	err = app.meals.UpdateMeal(ctx, "missing", entity.MealPatch{Name: &name})
	assert.Equal(t, nethttp.StatusNotFound, domainerrors.StatusCode(err))

	meals, err := app.meals.ListMeals(ctx)
	require.NoError(t, err)
	assert.Empty(t, meals)
}

func TestServer_ErrorBodies(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	tests := []struct {
		name       string
		method     string
		path       string
		header     map[string]string
		wantStatus int
		wantDetail string
	}{
		{
			name:       "missing bearer token",
			method:     nethttp.MethodGet,
			path:       "/meals",
			wantStatus: nethttp.StatusUnauthorized,
			wantDetail: "Not authenticated",
		},
		{
			name:       "invalid bearer token",
			method:     nethttp.MethodGet,
			path:       "/meals",
			header:     map[string]string{"Authorization": "Bearer nope"},
			wantStatus: nethttp.StatusUnauthorized,
			wantDetail: "Invalid authentication credentials",
		},
		{
			name:       "register without password",
			method:     nethttp.MethodPost,
			path:       "/register?email=a@b.com",
			wantStatus: nethttp.StatusUnprocessableEntity,
			wantDetail: "Password is required",
		},
		{
			name:       "classify without file",
			method:     nethttp.MethodPost,
			path:       "/classify",
			wantStatus: nethttp.StatusUnprocessableEntity,
			wantDetail: "file is required",
		},
		{
			name:       "unknown route",
			method:     nethttp.MethodGet,
			path:       "/nope",
			wantStatus: nethttp.StatusNotFound,
			wantDetail: "Not Found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req, err := nethttp.NewRequest(tt.method, app.url+tt.path, strings.NewReader(""))
			require.NoError(t, err)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}

			resp, err := nethttp.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))

			var body struct {
				Detail string `json:"detail"`
			}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.wantDetail, body.Detail)
		})
	}
}

func TestServer_Health(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	resp, err := nethttp.Get(app.url + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
}
