package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ledger/internal/delivery/http/middleware"
	"ledger/internal/delivery/http/validator"
	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	mockUC "ledger/internal/mocks/usecase"
	"ledger/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	return e
}

func newAuthHandler(t *testing.T) (*AuthHandler, *mockUC.MockAuthUsecase, *mockUC.MockPasswordResetUsecase) {
	authUC := mockUC.NewMockAuthUsecase(t)
	resetUC := mockUC.NewMockPasswordResetUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewAuthHandler(authUC, resetUC, logger), authUC, resetUC
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	h, authUC, _ := newAuthHandler(t)
	e.POST("/auth/login", h.Login)

	authUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "test@example.com", Password: "Password123"}).
		Return(&usecase.LoginOutput{
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
			ExpiresIn:    900,
			User:         &entity.User{ID: uuid.New(), Email: "test@example.com"},
		}, nil)

	body := `{"email":"test@example.com","password":"Password123"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"accessToken":"access-token"`)
	assert.Contains(t, rec.Body.String(), `"refreshToken":"refresh-token"`)
	assert.Contains(t, rec.Body.String(), `"expiresInSeconds":900`)
}

func TestAuthHandler_Login_MissingEmailRejected(t *testing.T) {
	e := newTestEcho()
	h, _, _ := newAuthHandler(t)
	e.POST("/auth/login", h.Login)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"password":"Password123"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Login_LockedAccountEnvelope(t *testing.T) {
	e := newTestEcho()
	h, authUC, _ := newAuthHandler(t)
	e.POST("/auth/login", h.Login)

	authUC.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrAccountLocked.WithDetails("try again in 29m0s"))

	body := `{"email":"test@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"ACCOUNT_LOCKED"`)
	assert.Contains(t, rec.Body.String(), "try again in 29m0s")
}

func TestAuthHandler_Refresh_Success(t *testing.T) {
	e := newTestEcho()
	h, authUC, _ := newAuthHandler(t)
	e.POST("/auth/refresh", h.Refresh)

	authUC.EXPECT().
		Refresh(mock.Anything, &usecase.RefreshInput{RefreshToken: "raw-old"}).
		Return(&usecase.RefreshOutput{
			AccessToken:  "new-access",
			RefreshToken: "raw-new",
			ExpiresIn:    900,
		}, nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", strings.NewReader(`{"refreshToken":"raw-old"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"refreshToken":"raw-new"`)
}

func TestAuthHandler_Refresh_ExpiredTokenEnvelope(t *testing.T) {
	e := newTestEcho()
	h, authUC, _ := newAuthHandler(t)
	e.POST("/auth/refresh", h.Refresh)

	authUC.EXPECT().
		Refresh(mock.Anything, mock.AnythingOfType("*usecase.RefreshInput")).
		Return(nil, domainerrors.ErrTokenExpired)

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", strings.NewReader(`{"refreshToken":"raw-dead"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"TOKEN_EXPIRED"`)
}

func TestAuthHandler_Logout_AlwaysSucceeds(t *testing.T) {
	e := newTestEcho()
	h, authUC, _ := newAuthHandler(t)
	e.POST("/auth/logout", h.Logout)

	authUC.EXPECT().
		Logout(mock.Anything, &usecase.LogoutInput{RefreshToken: "whatever"}).
		Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", strings.NewReader(`{"refreshToken":"whatever"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_ResetPassword_ValidatesOtpShape(t *testing.T) {
	e := newTestEcho()
	h, _, _ := newAuthHandler(t)
	e.POST("/auth/reset-password", h.ResetPassword)

	// OTP must be exactly six digits, so the usecase is never reached.
	body := `{"email":"test@example.com","otp":"12ab","newPassword":"Password123"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/reset-password", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Me_ReturnsProfileWithoutSecrets(t *testing.T) {
	e := newTestEcho()
	h, authUC, _ := newAuthHandler(t)
	e.GET("/auth/me", func(c echo.Context) error {
		c.Set("userEmail", "test@example.com")

		return h.Me(c)
	})

	user := &entity.User{
		ID:           uuid.New(),
		Name:         "Test User",
		Email:        "test@example.com",
		PasswordHash: "hashed-secret",
		Role:         entity.RoleUser,
		CreatedAt:    time.Now(),
	}
	authUC.EXPECT().GetCurrentUser(mock.Anything, user.Email).Return(user, nil)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), user.Email)
	assert.NotContains(t, rec.Body.String(), "hashed-secret")
}

func TestAuthHandler_ForgotPassword_Success(t *testing.T) {
	e := newTestEcho()
	h, _, resetUC := newAuthHandler(t)
	e.POST("/auth/forgot-password", h.ForgotPassword)

	resetUC.EXPECT().
		ForgotPassword(mock.Anything, &usecase.ForgotPasswordInput{Email: "test@example.com"}).
		Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/forgot-password", strings.NewReader(`{"email":"test@example.com"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
