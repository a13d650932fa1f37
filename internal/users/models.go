package users

// User is a row of the users/addresses left join. Address is nil when the
// user has no address row.
type User struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Address *string `json:"address"`
}

// Post as listed for a user. CreatedAt is the stored ISO-8601 text.
type Post struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
}

// NewPost holds the fields accepted when creating a post.
type NewPost struct {
	Title string
	Body  string
}

// CreatedPost is returned after a successful insert.
type CreatedPost struct {
	ID        int64  `json:"id"`
	UserID    string `json:"userId"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	CreatedAt string `json:"createdAt"`
}

// Pagination describes the page returned by ListUsers.
type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	PageSize     int   `json:"pageSize"`
	TotalPages   int   `json:"totalPages"`
	TotalRecords int64 `json:"totalRecords"`
}

// UserPage is one page of users plus its pagination metadata.
type UserPage struct {
	Data       []User     `json:"data"`
	Pagination Pagination `json:"pagination"`
}
