package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Aidin1998/userfeed/internal/users"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type failingRepo struct{ users.Repository }

func (failingRepo) ListPosts(context.Context, string) ([]users.Post, error) {
	panic("store must not be called")
}

func (failingRepo) CreatePost(context.Context, string, users.NewPost) (*users.CreatedPost, error) {
	panic("store must not be called")
}

func TestBlankUserIDIsRejected(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := &Server{logger: zap.NewNop(), users: failingRepo{}}

	for _, id := range []string{"", "  "} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/users/x/posts", nil)
		c.Params = gin.Params{{Key: "id", Value: id}}
		s.listPosts(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":{"kind":"invalid_argument","message":"User ID is required"}}`, w.Body.String())

		w = httptest.NewRecorder()
		c, _ = gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/users/posts/add/x", strings.NewReader(`{"title":"t","body":"b"}`))
		c.Params = gin.Params{{Key: "userId", Value: id}}
		s.createPost(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}
