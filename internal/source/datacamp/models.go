package datacamp

// APIResponse represents one page of the leaderboard endpoint.
type APIResponse struct {
	Entries    []Entry    `json:"entries"`
	Pagination Pagination `json:"pagination"`
}

type Pagination struct {
	CurrentPage     int  `json:"currentPage"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
	PageSize        int  `json:"pageSize"`
	TotalPages      int  `json:"totalPages"`
}

type Entry struct {
	Chapters int    `json:"chapters"`
	Courses  int    `json:"courses"`
	LastXP   string `json:"lastXp"`
	Rank     int    `json:"rank"`
	User     User   `json:"user"`
	XP       int    `json:"xp"`
}

type User struct {
	AvatarURL string `json:"avatarUrl"`
	Email     string `json:"email"`
	FullName  string `json:"fullName"`
	ID        int64  `json:"id"`
	Slug      string `json:"slug"`
}
