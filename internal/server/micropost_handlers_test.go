package server

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"murmur/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMicropost(t *testing.T) {
	s, db := newTestServer(t)
	author := createHandlerTestUser(t, db, "Author", "author@example.com", "password123")

	app := fiber.New()
	app.Use(asUser(author.ID))
	app.Post("/api/microposts", s.CreateMicropost)

	t.Run("valid content", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/microposts", fiber.Map{
			"content": "Lorem ipsum",
		}), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		body := decodeBody(t, resp)
		post, ok := body["micropost"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Lorem ipsum", post["content"])
		assert.EqualValues(t, author.ID, post["user_id"])
	})

	t.Run("content too long", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/microposts", fiber.Map{
			"content": strings.Repeat("a", 141),
		}), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		body := decodeBody(t, resp)
		fields, ok := body["fields"].(map[string]any)
		require.True(t, ok)
		assert.Contains(t, fields, "content")
	})

	t.Run("blank content", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/microposts", fiber.Map{
			"content": "   ",
		}), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		_ = resp.Body.Close()
	})
}

func TestDeleteMicropostOwnership(t *testing.T) {
	s, db := newTestServer(t)
	author := createHandlerTestUser(t, db, "Author", "author@example.com", "password123")
	other := createHandlerTestUser(t, db, "Other", "other@example.com", "password123")

	post := &models.Micropost{UserID: author.ID, Content: "mine"}
	require.NoError(t, db.Create(post).Error)

	target := fmt.Sprintf("/api/microposts/%d", post.ID)

	otherApp := fiber.New()
	otherApp.Use(asUser(other.ID))
	otherApp.Delete("/api/microposts/:id", s.DeleteMicropost)

	resp, err := otherApp.Test(jsonRequest(t, http.MethodDelete, target, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	_ = resp.Body.Close()

	ownerApp := fiber.New()
	ownerApp.Use(asUser(author.ID))
	ownerApp.Delete("/api/microposts/:id", s.DeleteMicropost)

	resp, err = ownerApp.Test(jsonRequest(t, http.MethodDelete, target, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	var count int64
	db.Model(&models.Micropost{}).Where("id = ?", post.ID).Count(&count)
	assert.Zero(t, count)
}

func TestGetFeed(t *testing.T) {
	s, db := newTestServer(t)
	viewer := createHandlerTestUser(t, db, "Viewer", "viewer@example.com", "password123")
	followed := createHandlerTestUser(t, db, "Followed", "followed@example.com", "password123")
	stranger := createHandlerTestUser(t, db, "Stranger", "stranger@example.com", "password123")

	require.NoError(t, db.Create(&models.Relationship{FollowerID: viewer.ID, FollowedID: followed.ID}).Error)

	base := time.Now().Add(-time.Hour)
	require.NoError(t, db.Create(&models.Micropost{UserID: viewer.ID, Content: "own", CreatedAt: base.Add(time.Minute)}).Error)
	require.NoError(t, db.Create(&models.Micropost{UserID: followed.ID, Content: "followed", CreatedAt: base.Add(2 * time.Minute)}).Error)
	require.NoError(t, db.Create(&models.Micropost{UserID: stranger.ID, Content: "hidden", CreatedAt: base.Add(3 * time.Minute)}).Error)

	app := fiber.New()
	app.Use(asUser(viewer.ID))
	app.Get("/api/feed", s.GetFeed)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/feed", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	posts, ok := body["microposts"].([]any)
	require.True(t, ok)
	require.Len(t, posts, 2)

	first := posts[0].(map[string]any)
	second := posts[1].(map[string]any)
	assert.Equal(t, "followed", first["content"])
	assert.Equal(t, "own", second["content"])
}
