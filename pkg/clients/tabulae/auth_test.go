package tabulae

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duquediazn/tabulae-client/internal/domain/models"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(server.URL, 5*time.Second)
}

func TestLoginSendsFormEncodedCredentials(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)
		require.Contains(t, r.Header.Get("Content-Type"), "application/x-www-form-urlencoded")

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "ada@example.com", r.PostFormValue("username"))
		assert.Equal(t, "s3cret", r.PostFormValue("password"))

		http.SetCookie(w, &http.Cookie{Name: "refresh_token", Value: "opaque", HttpOnly: true})
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.TokenResponse{AccessToken: "abc", TokenType: "bearer"})
	})

	tok, err := client.Auth.Login(context.Background(), "ada@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "abc", tok.AccessToken)
	assert.Equal(t, "bearer", tok.TokenType)
}

func TestLoginSurfacesServerDetail(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Incorrect email or password"}`))
	})

	_, err := client.Auth.Login(context.Background(), "ada@example.com", "wrong")
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.EqualError(t, err, "Incorrect email or password")
}

func TestRegisterSurfacesValidationErrors(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail":[{"msg":"field required"},{"msg":"value is not a valid email"}]}`))
	})

	_, err := client.Auth.Register(context.Background(), models.RegisterRequest{Name: "Ada"})
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusUnprocessableEntity))
	assert.EqualError(t, err, "field required; value is not a valid email")
}

func TestRefreshSendsStoredCookie(t *testing.T) {
	var refreshCookie string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/auth/login":
			http.SetCookie(w, &http.Cookie{Name: "refresh_token", Value: "durable", HttpOnly: true, Path: "/"})
			json.NewEncoder(w).Encode(models.TokenResponse{AccessToken: "first", TokenType: "bearer"})
		case "/auth/refresh":
			if cookie, err := r.Cookie("refresh_token"); err == nil {
				refreshCookie = cookie.Value
			}
			json.NewEncoder(w).Encode(models.TokenResponse{AccessToken: "second", TokenType: "bearer"})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	_, err := client.Auth.Login(context.Background(), "ada@example.com", "s3cret")
	require.NoError(t, err)

	tok, err := client.Auth.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "second", tok.AccessToken)
	assert.Equal(t, "durable", refreshCookie, "refresh rides on the jarred cookie")
}

func TestProfileSendsBearerToken(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.Profile{ID: 7, Name: "Ada", Email: "ada@example.com", Role: models.RoleAdmin, IsActive: true})
	})

	profile, err := client.Auth.Profile(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, 7, profile.ID)
	assert.True(t, profile.IsAdmin())
}

func TestTokenSourceAttachesAuthHeader(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer from-source", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.Paginated[models.Product]{Data: []models.Product{}, Total: 0, Limit: 10, Offset: 0})
	})
	client.SetTokenSource(StaticToken("from-source"))

	_, err := client.Products.List(context.Background(), models.ProductFilters{}, 10, 0)
	require.NoError(t, err)
}

func TestEmptyTokenSourceSendsNoHeader(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.Paginated[models.Product]{})
	})
	client.SetTokenSource(StaticToken(""))

	_, err := client.Products.List(context.Background(), models.ProductFilters{}, 10, 0)
	require.NoError(t, err)
}
