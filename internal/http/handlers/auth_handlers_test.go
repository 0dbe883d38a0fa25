package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/jd6186/interview-assignments/domain"
	"github.com/jd6186/interview-assignments/internal/mocks"
)

func performJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, domain.Response) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp domain.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse envelope: %v", err)
	}
	return w, resp
}

func newAuthRouter(authSvc domain.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuthHandlers(authSvc)
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	return r
}

func validRegisterBody() map[string]any {
	return map[string]any{
		"login_email": "a@x.com",
		"password":    "secret",
		"name":        "Test User",
		"gender":      "Male",
		"age":         30,
		"phone":       "123456789",
	}
}

func TestAuthHandlers_Register(t *testing.T) {
	tests := []struct {
		name               string
		body               map[string]any
		setupMocks         func(*mocks.MockAuthService)
		expectedSuccess    bool
		expectedStatusCode int
	}{
		{
			name:               "successful registration",
			body:               validRegisterBody(),
			setupMocks:         func(authSvc *mocks.MockAuthService) {},
			expectedSuccess:    true,
			expectedStatusCode: 200,
		},
		{
			name: "duplicate email maps to bad request",
			body: validRegisterBody(),
			setupMocks: func(authSvc *mocks.MockAuthService) {
				authSvc.RegisterFunc = func(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
					return nil, domain.ErrEmailTaken
				}
			},
			expectedSuccess:    false,
			expectedStatusCode: 400,
		},
		{
			name: "missing password",
			body: map[string]any{
				"login_email": "a@x.com",
				"name":        "Test User",
			},
			setupMocks:         func(authSvc *mocks.MockAuthService) {},
			expectedSuccess:    false,
			expectedStatusCode: 400,
		},
		{
			name: "store failure maps to server error",
			body: validRegisterBody(),
			setupMocks: func(authSvc *mocks.MockAuthService) {
				authSvc.RegisterFunc = func(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
					return nil, errors.New("connection refused")
				}
			},
			expectedSuccess:    false,
			expectedStatusCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := mocks.NewMockAuthService()
			tt.setupMocks(authSvc)
			r := newAuthRouter(authSvc)

			w, resp := performJSON(t, r, http.MethodPost, "/auth/register", tt.body)

			// Business failures stay behind a 200 status line; only the
			// embedded status_code tells them apart.
			if w.Code != http.StatusOK {
				t.Fatalf("transport status = %d, want 200", w.Code)
			}
			if resp.Success != tt.expectedSuccess {
				t.Errorf("success = %v, want %v", resp.Success, tt.expectedSuccess)
			}
			if resp.StatusCode != tt.expectedStatusCode {
				t.Errorf("status_code = %d, want %d", resp.StatusCode, tt.expectedStatusCode)
			}
		})
	}
}

func TestAuthHandlers_RegisterHidesPasswordHash(t *testing.T) {
	authSvc := mocks.NewMockAuthService()
	authSvc.RegisterFunc = func(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
		return &domain.User{ID: 1, LoginEmail: input.LoginEmail, PasswordHash: "very-secret-hash", Name: input.Name}, nil
	}
	r := newAuthRouter(authSvc)

	w, resp := performJSON(t, r, http.MethodPost, "/auth/register", validRegisterBody())
	if w.Code != http.StatusOK || !resp.Success {
		t.Fatalf("unexpected response: code=%d success=%v", w.Code, resp.Success)
	}
	if bytes.Contains(w.Body.Bytes(), []byte("very-secret-hash")) {
		t.Error("response body must never contain the password hash")
	}
}

func TestAuthHandlers_Login(t *testing.T) {
	tests := []struct {
		name               string
		body               map[string]any
		setupMocks         func(*mocks.MockAuthService)
		expectedSuccess    bool
		expectedStatusCode int
		expectToken        bool
	}{
		{
			name: "successful login returns token",
			body: map[string]any{"login_email": "a@x.com", "password": "secret"},
			setupMocks: func(authSvc *mocks.MockAuthService) {
				authSvc.LoginFunc = func(ctx context.Context, email, password string) (string, error) {
					return "signed.jwt.token", nil
				}
			},
			expectedSuccess:    true,
			expectedStatusCode: 200,
			expectToken:        true,
		},
		{
			name: "invalid credentials",
			body: map[string]any{"login_email": "a@x.com", "password": "wrong"},
			setupMocks: func(authSvc *mocks.MockAuthService) {
				authSvc.LoginFunc = func(ctx context.Context, email, password string) (string, error) {
					return "", domain.ErrInvalidCredentials
				}
			},
			expectedSuccess:    false,
			expectedStatusCode: 401,
		},
		{
			name:               "missing password field",
			body:               map[string]any{"login_email": "a@x.com"},
			setupMocks:         func(authSvc *mocks.MockAuthService) {},
			expectedSuccess:    false,
			expectedStatusCode: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := mocks.NewMockAuthService()
			tt.setupMocks(authSvc)
			r := newAuthRouter(authSvc)

			w, resp := performJSON(t, r, http.MethodPost, "/auth/login", tt.body)

			if w.Code != http.StatusOK {
				t.Fatalf("transport status = %d, want 200", w.Code)
			}
			if resp.Success != tt.expectedSuccess {
				t.Errorf("success = %v, want %v", resp.Success, tt.expectedSuccess)
			}
			if resp.StatusCode != tt.expectedStatusCode {
				t.Errorf("status_code = %d, want %d", resp.StatusCode, tt.expectedStatusCode)
			}
			if tt.expectToken {
				data, ok := resp.Data.(map[string]any)
				if !ok || data["access_token"] != "signed.jwt.token" {
					t.Errorf("data = %v, want access_token", resp.Data)
				}
			}
		})
	}
}
