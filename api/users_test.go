package api_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Aidin1998/userfeed/internal/users"
	"github.com/Aidin1998/userfeed/pkg/errors"
	"github.com/Aidin1998/userfeed/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestListUsersPassesParsedPage(t *testing.T) {
	cases := map[string]int{
		"/users":          1,
		"/users?page=3":   3,
		"/users?page=0":   1,
		"/users?page=-2":  1,
		"/users?page=abc": 1,
	}
	for path, want := range cases {
		repo := &stubRepo{page: &users.UserPage{Data: []users.User{}}}
		w := serve(setupRouter(repo), httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Equal(t, want, repo.lastPage, path)
	}
}

func TestListUsersStoreFailure(t *testing.T) {
	repo := &stubRepo{err: errors.StoreFailure.Explain("no such table: users")}
	w := serve(setupRouter(repo), httptest.NewRequest(http.MethodGet, "/users", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":{"kind":"store_failure","message":"no such table: users"}}`, w.Body.String())
}

func TestListPostsStoreFailure(t *testing.T) {
	repo := &stubRepo{err: errors.StoreFailure.Explain("disk I/O error")}
	w := serve(setupRouter(repo), httptest.NewRequest(http.MethodGet, "/users/7/posts", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":{"kind":"store_failure","message":"disk I/O error"}}`, w.Body.String())
	assert.Equal(t, "7", repo.lastUser)
}

func TestCreatePostMissingFieldsNeverReachesStore(t *testing.T) {
	bodies := []string{
		`{"body":"World"}`,
		`{"title":"Hello"}`,
		`{"title":"","body":"World"}`,
		`{}`,
		``,
		`not json`,
		`{"title":123,"body":"World"}`,
		`{"title":"Hello","body":true}`,
	}
	for _, body := range bodies {
		repo := &stubRepo{}
		w := serve(setupRouter(repo), postJSON("/users/posts/add/1", body))

		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Zero(t, repo.calls, body)
		resp := decode(t, w)
		e := resp["error"].(map[string]interface{})
		assert.Equal(t, "invalid_argument", e["kind"], body)
		assert.Equal(t, "Title and body are required.", e["message"], body)
	}
}

func TestCreatePostReportsMissingField(t *testing.T) {
	w := serve(setupRouter(&stubRepo{}), postJSON("/users/posts/add/1", `{"title":"Hello"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":{
		"kind":"invalid_argument",
		"message":"Title and body are required.",
		"fields":[{"field":"body","rule":"required","message":"body is required"}]
	}}`, w.Body.String())
}

func TestCreatePostStoreFailure(t *testing.T) {
	repo := &stubRepo{err: errors.StoreFailure.Explain("FOREIGN KEY constraint failed")}
	w := serve(setupRouter(repo), postJSON("/users/posts/add/999", `{"title":"t","body":"b"}`))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{
		"message":"Internal Server Error",
		"error":{"kind":"store_failure","message":"FOREIGN KEY constraint failed"}
	}`, w.Body.String())
	assert.Equal(t, users.NewPost{Title: "t", Body: "b"}, repo.lastPost)
}

func TestCreatePostUnexpectedError(t *testing.T) {
	repo := &stubRepo{err: fmt.Errorf("boom")}
	w := serve(setupRouter(repo), postJSON("/users/posts/add/1", `{"title":"t","body":"b"}`))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Internal Server Error","error":{"kind":"internal","message":"boom"}}`, w.Body.String())
}

// The remaining tests run against a real SQLite store.

func newStoreRouter(t *testing.T, clock users.Clock) (*gin.Engine, []int64) {
	t.Helper()
	db := testutil.NewDB(t)
	ids := testutil.SeedUsers(t, db, 12)
	opts := []users.Option{}
	if clock != nil {
		opts = append(opts, users.WithClock(clock))
	}
	return setupRouter(users.NewStore(zap.NewNop(), db, opts...)), ids
}

func TestListUsersEndToEnd(t *testing.T) {
	router, _ := newStoreRouter(t, nil)

	w := serve(router, httptest.NewRequest(http.MethodGet, "/users?page=2", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp users.UserPage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, users.Pagination{CurrentPage: 2, PageSize: 5, TotalPages: 3, TotalRecords: 12}, resp.Pagination)
	require.Len(t, resp.Data, 5)
	assert.Equal(t, "User 6", resp.Data[0].Name)
	assert.Nil(t, resp.Data[0].Address)
	require.NotNil(t, resp.Data[1].Address)
	assert.Equal(t, "7 Main St, Springfield, IL 62707", *resp.Data[1].Address)

	raw := decode(t, w)
	first := raw["data"].([]interface{})[0].(map[string]interface{})
	assert.Contains(t, first, "address")
	assert.Nil(t, first["address"])
	assert.Contains(t, raw["pagination"], "currentPage")
}

func TestListUsersBeyondLastPageEndToEnd(t *testing.T) {
	router, _ := newStoreRouter(t, nil)

	w := serve(router, httptest.NewRequest(http.MethodGet, "/users?page=9", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":[],"pagination":{"currentPage":9,"pageSize":5,"totalPages":3,"totalRecords":12}}`, w.Body.String())
}

func TestListUsersHugePageEndToEnd(t *testing.T) {
	router, _ := newStoreRouter(t, nil)

	w := serve(router, httptest.NewRequest(http.MethodGet, "/users?page=3689348814741910324", nil))
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, []interface{}{}, resp["data"])
	assert.Equal(t, float64(3), resp["pagination"].(map[string]interface{})["totalPages"])
}

func TestCreateThenListPosts(t *testing.T) {
	fixed := time.Date(2025, 1, 2, 3, 4, 5, 6000000, time.UTC)
	router, ids := newStoreRouter(t, users.ClockFunc(func() time.Time { return fixed }))
	userID := fmt.Sprint(ids[0])

	w := serve(router, postJSON("/users/posts/add/"+userID, `{"title":"Hello","body":"World"}`))
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Message string            `json:"message"`
		Data    users.CreatedPost `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Post created successfully", created.Message)
	assert.NotZero(t, created.Data.ID)
	assert.Equal(t, userID, created.Data.UserID)
	assert.Equal(t, "Hello", created.Data.Title)
	assert.Equal(t, "World", created.Data.Body)
	assert.Equal(t, "2025-01-02T03:04:05.006Z", created.Data.CreatedAt)

	w = serve(router, httptest.NewRequest(http.MethodGet, "/users/"+userID+"/posts", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"userId":%q,"data":[
		{"id":%d,"title":"Hello","body":"World","created_at":"2025-01-02T03:04:05.006Z"}
	]}`, userID, created.Data.ID), w.Body.String())
}

func TestCreatePostUnknownUserEndToEnd(t *testing.T) {
	router, _ := newStoreRouter(t, nil)

	w := serve(router, postJSON("/users/posts/add/999", `{"title":"t","body":"b"}`))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "Internal Server Error", resp["message"])
	assert.Equal(t, "store_failure", resp["error"].(map[string]interface{})["kind"])
}

func TestListPostsUnknownUserEndToEnd(t *testing.T) {
	router, _ := newStoreRouter(t, nil)

	w := serve(router, httptest.NewRequest(http.MethodGet, "/users/404/posts", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId":"404","data":[]}`, w.Body.String())
}
