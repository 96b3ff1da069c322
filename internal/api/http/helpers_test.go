package httpapi_test

import (
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	httpapi "sric-access-backend/internal/api/http"
	"sric-access-backend/internal/domain"
	"sric-access-backend/internal/security"
)

const testJWTSecret = "test-secret-test-secret-test-secret!"

var mockAnyContext = mock.Anything

const testAdminPassword = "letmein"

type testEnv struct {
	processor *MockProcessorService
	review    *MockGuestReviewService
	notifier  *MockNotificationService
	admin     *MockAdminService
	profiles  *MockProfileRepo
	guests    *MockGuestRepo
	tokens    security.TokenManager
	router    *mux.Router
}

func newTestEnv() *testEnv {
	env := &testEnv{
		processor: new(MockProcessorService),
		review:    new(MockGuestReviewService),
		notifier:  new(MockNotificationService),
		admin:     new(MockAdminService),
		profiles:  new(MockProfileRepo),
		guests:    new(MockGuestRepo),
		tokens:    security.NewTokenManager(testJWTSecret),
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}

	server := httpapi.NewServer(
		env.processor, env.review, env.notifier, env.admin,
		env.profiles, env.guests, env.tokens, string(hash),
	)
	env.router = mux.NewRouter()
	server.RegisterRoutes(env.router)
	return env
}

func approvedProfile(org string) *domain.Profile {
	return &domain.Profile{
		UserID:                 uuid.New(),
		Email:                  "jane@acme.com",
		FullName:               "Jane Doe",
		Organization:           org,
		AuthenticationStatus:   domain.AuthStatusApproved,
		EmailProcessingEnabled: true,
	}
}

// authorize mints a valid token for the profile and registers the
// profile lookup the auth middleware performs.
func (env *testEnv) authorize(p *domain.Profile) string {
	env.profiles.On("GetByUserID", mockAnyContext, p.UserID).Return(p, nil)
	token, err := env.tokens.GenerateAccessToken(p.UserID, p.Email, time.Hour)
	if err != nil {
		panic(err)
	}
	return "Bearer " + token
}

func (env *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}
