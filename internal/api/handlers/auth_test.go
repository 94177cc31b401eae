package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/plateful/plateful-server/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Register(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tests := []struct {
		name           string
		request        map[string]string
		setup          func()
		expectedStatus int
		checkResponse  func(*testing.T, *http.Response)
	}{
		{
			name: "successful registration",
			request: map[string]string{
				"firstName": "Ada",
				"lastName":  "Lovelace",
				"email":     "ada@example.com",
				"password":  "password123",
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *http.Response) {
				body, err := io.ReadAll(resp.Body)
				require.NoError(t, err)

				var result map[string]interface{}
				require.NoError(t, json.Unmarshal(body, &result))
				assert.Equal(t, "ada@example.com", result["email"])
				assert.NotEmpty(t, result["id"])

				// The password never appears in a response, hashed or not
				assert.NotContains(t, result, "password")
				assert.NotContains(t, result, "passwordHash")
				assert.NotContains(t, string(body), "password123")
			},
		},
		{
			name: "optional picture reference",
			request: map[string]string{
				"firstName": "Grace",
				"lastName":  "Hopper",
				"email":     "grace@example.com",
				"password":  "password123",
				"picture":   "grace.jpg",
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *http.Response) {
				var result testutil.UserResponse
				testutil.AssertJSONResponse(t, resp, &result)
				assert.Equal(t, "grace.jpg", result.Picture)
			},
		},
		{
			name: "missing email",
			request: map[string]string{
				"password": "password123",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing password",
			request: map[string]string{
				"email": "nopassword@example.com",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate email",
			request: map[string]string{
				"firstName": "Someone",
				"lastName":  "Else",
				"email":     "taken@example.com",
				"password":  "password123",
			},
			setup: func() {
				testutil.NewUserBuilder().
					WithEmail("taken@example.com").
					Build(t, ts.DB.DB)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts.DB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			body, _ := json.Marshal(tt.request)
			resp, err := http.Post(ts.APIURL("/auth/register"), "application/json", bytes.NewBuffer(body))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.checkResponse != nil {
				tt.checkResponse(t, resp)
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	ts := testutil.NewTestServer(t)

	// Create a user for login tests
	user, rawPassword := testutil.NewUserBuilder().
		WithEmail("a@x.com").
		WithPassword("secret").
		Build(t, ts.DB.DB)

	tests := []struct {
		name           string
		request        map[string]string
		expectedStatus int
		checkResponse  func(*testing.T, *http.Response)
	}{
		{
			name: "successful login",
			request: map[string]string{
				"email":    user.Email,
				"password": rawPassword,
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *http.Response) {
				body, err := io.ReadAll(resp.Body)
				require.NoError(t, err)

				var result testutil.LoginResponse
				require.NoError(t, json.Unmarshal(body, &result))
				assert.NotEmpty(t, result.Token)
				assert.Equal(t, user.ID.String(), result.User.ID)
				assert.NotContains(t, string(body), "passwordHash")
			},
		},
		{
			name: "wrong password",
			request: map[string]string{
				"email":    user.Email,
				"password": "wrong",
			},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, resp *http.Response) {
				var result map[string]string
				testutil.AssertJSONResponse(t, resp, &result)
				assert.Equal(t, "Invalid credentials.", result["msg"])
			},
		},
		{
			name: "unknown email gets the same response as a bad password",
			request: map[string]string{
				"email":    "nobody@example.com",
				"password": "secret",
			},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, resp *http.Response) {
				var result map[string]string
				testutil.AssertJSONResponse(t, resp, &result)
				assert.Equal(t, "Invalid credentials.", result["msg"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.request)
			resp, err := http.Post(ts.APIURL("/auth/login"), "application/json", bytes.NewBuffer(body))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.checkResponse != nil {
				tt.checkResponse(t, resp)
			}
		})
	}
}

func TestAuthHandler_RegisterThenLogin(t *testing.T) {
	ts := testutil.NewTestServer(t)

	registerBody, _ := json.Marshal(map[string]string{
		"firstName": "Flow",
		"lastName":  "Test",
		"email":     "flow@example.com",
		"password":  "secret",
	})
	resp, err := http.Post(ts.APIURL("/auth/register"), "application/json", bytes.NewBuffer(registerBody))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	loginBody, _ := json.Marshal(map[string]string{
		"email":    "flow@example.com",
		"password": "secret",
	})
	resp, err = http.Post(ts.APIURL("/auth/login"), "application/json", bytes.NewBuffer(loginBody))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result testutil.LoginResponse
	testutil.AssertJSONResponse(t, resp, &result)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "flow@example.com", result.User.Email)
}
