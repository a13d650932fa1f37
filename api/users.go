package api

import (
	"strings"

	"github.com/Aidin1998/userfeed/api/responses"
	"github.com/Aidin1998/userfeed/common/apiutil"
	"github.com/Aidin1998/userfeed/internal/users"
	"github.com/Aidin1998/userfeed/pkg/errors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	msgUserIDRequired   = "User ID is required"
	msgTitleBodyMissing = "Title and body are required."
	msgPostCreated      = "Post created successfully"
	msgInternalError    = "Internal Server Error"
)

type createPostRequest struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}

type postsResponse struct {
	UserID string       `json:"userId"`
	Data   []users.Post `json:"data"`
}

// listUsers handles GET /users?page=N.
func (s *Server) listUsers(c *gin.Context) {
	page := users.ParsePage(c.Query("page"))

	result, err := s.users.ListUsers(c.Request.Context(), page)
	if err != nil {
		apiutil.Logger(c, s.logger).Error("Failed to list users", zap.Int("page", page), zap.Error(err))
		responses.Error(c, err)
		return
	}
	responses.OK(c, result)
}

// listPosts handles GET /users/:id/posts.
func (s *Server) listPosts(c *gin.Context) {
	userID := c.Param("id")
	if strings.TrimSpace(userID) == "" {
		responses.BadRequest(c, msgUserIDRequired)
		return
	}

	posts, err := s.users.ListPosts(c.Request.Context(), userID)
	if err != nil {
		apiutil.Logger(c, s.logger).Error("Failed to list posts", zap.String("user_id", userID), zap.Error(err))
		responses.Error(c, err)
		return
	}
	responses.OK(c, postsResponse{UserID: userID, Data: posts})
}

// createPost handles POST /users/posts/add/:userId.
func (s *Server) createPost(c *gin.Context) {
	userID := c.Param("userId")
	if strings.TrimSpace(userID) == "" {
		responses.BadRequest(c, msgUserIDRequired)
		return
	}

	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, msgTitleBodyMissing)
		return
	}
	if err := s.validator.Validate(req); err != nil {
		responses.Error(c, errors.From(err).Explain(msgTitleBodyMissing))
		return
	}

	created, err := s.users.CreatePost(c.Request.Context(), userID, users.NewPost{Title: req.Title, Body: req.Body})
	if err != nil {
		e := errors.From(err)
		if e.Kind == errors.KindInvalidArgument {
			responses.Error(c, e)
			return
		}
		apiutil.Logger(c, s.logger).Error("Failed to create post", zap.String("user_id", userID), zap.Error(err))
		responses.ErrorWithMessage(c, msgInternalError, e)
		return
	}
	responses.Created(c, msgPostCreated, created)
}
