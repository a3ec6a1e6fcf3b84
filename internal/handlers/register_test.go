package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/pavlenkodm/movie-stats/internal/services"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name: "success",
			body: `{"email":"john@example.com","password":"secret123","username":"johnny"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john@example.com", "secret123", "johnny").
					Return(nil)
			},
			expectedCode: 200,
			expectedBody: map[string]string{"message": "ok"},
		},
		{
			name: "email normalized and username derived from local part",
			body: `{"email":" John@Example.COM ","password":"secret123"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john@example.com", "secret123", "john").
					Return(nil)
			},
			expectedCode: 200,
			expectedBody: map[string]string{"message": "ok"},
		},
		{
			name:         "missing email",
			body:         `{"password":"secret123"}`,
			expectedCode: 400,
			expectedBody: map[string]string{"error": "email and password required"},
		},
		{
			name:         "missing password",
			body:         `{"email":"john@example.com"}`,
			expectedCode: 400,
			expectedBody: map[string]string{"error": "email and password required"},
		},
		{
			name:         "whitespace-only email",
			body:         `{"email":"   ","password":"secret123"}`,
			expectedCode: 400,
			expectedBody: map[string]string{"error": "email and password required"},
		},
		{
			name: "duplicate email",
			body: `{"email":"john@example.com","password":"secret123"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john@example.com", "secret123", "john").
					Return(services.ErrEmailAlreadyExists)
			},
			expectedCode: 409,
			expectedBody: map[string]string{"error": "email already exists"},
		},
		{
			name: "internal server error",
			body: `{"email":"john@example.com","password":"secret123"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john@example.com", "secret123", "john").
					Return(errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]string{"error": "internal server error"},
		},
		{
			name:         "invalid json",
			body:         `{invalid json}`,
			expectedCode: 400,
			expectedBody: map[string]string{"error": "email and password required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]string
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}

func TestLocalPart(t *testing.T) {
	assert.Equal(t, "john", localPart("john@example.com"))
	assert.Equal(t, "nodomain", localPart("nodomain"))
	assert.Equal(t, "", localPart("@example.com"))
}
