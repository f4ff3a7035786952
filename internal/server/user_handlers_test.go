package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cliptube/internal/models"
	"cliptube/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserTestServer(repo *MockUserRepository) *Server {
	return &Server{userService: service.NewUserService(repo)}
}

func TestGetUserProfileHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("GetByID", mock.Anything, uint(7)).
			Return(&models.User{ID: 7, Username: "creator", SubscriberCount: 12}, nil)

		s := newUserTestServer(mockRepo)
		app := fiber.New()
		app.Get("/users/:id", s.GetUserProfile)

		req := httptest.NewRequest(http.MethodGet, "/users/7", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "creator", body["username"])
		assert.Equal(t, float64(12), body["subscriber_count"])
	})

	t.Run("Not Found", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("GetByID", mock.Anything, uint(999)).
			Return(nil, gorm.ErrRecordNotFound)

		s := newUserTestServer(mockRepo)
		app := fiber.New()
		app.Get("/users/:id", s.GetUserProfile)

		req := httptest.NewRequest(http.MethodGet, "/users/999", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestUpdateMyProfileHandler(t *testing.T) {
	t.Run("Updates Bio", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("GetByID", mock.Anything, uint(1)).
			Return(&models.User{ID: 1, Username: "viewer"}, nil)
		mockRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

		s := newUserTestServer(mockRepo)
		app := fiber.New()
		app.Put("/users/me", withUser(1), s.UpdateMyProfile)

		body, _ := json.Marshal(map[string]string{"bio": "I make videos"})
		req := httptest.NewRequest(http.MethodPut, "/users/me", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var parsed map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
		assert.Equal(t, "I make videos", parsed["bio"])
		mockRepo.AssertExpectations(t)
	})

	t.Run("Username Taken", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("GetByID", mock.Anything, uint(1)).
			Return(&models.User{ID: 1, Username: "viewer"}, nil)
		mockRepo.On("GetByUsername", mock.Anything, "creator").
			Return(&models.User{ID: 2, Username: "creator"}, nil)

		s := newUserTestServer(mockRepo)
		app := fiber.New()
		app.Put("/users/me", withUser(1), s.UpdateMyProfile)

		body, _ := json.Marshal(map[string]string{"username": "creator"})
		req := httptest.NewRequest(http.MethodPut, "/users/me", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
