package entity

// Blog is a published or draft post as served by the upstream API.
// Timestamps stay as strings; the upstream owns their format.
type Blog struct {
	ID                int64  `json:"id"`
	Title             string `json:"title"`
	Slug              string `json:"slug"`
	Subheading        string `json:"subheading"`
	TLDR              string `json:"tldr"`
	Content           string `json:"content"`
	Image             string `json:"image"`
	EstimatedReadTime int    `json:"estimated_read_time"`
	CreatedAt         string `json:"created_at"`
}

// BlogDraft carries the writable fields of a blog for create and update calls.
type BlogDraft struct {
	Title             string `json:"title" binding:"required"`
	Slug              string `json:"slug" binding:"required,slug"`
	Subheading        string `json:"subheading"`
	TLDR              string `json:"tldr"`
	Content           string `json:"content" binding:"required"`
	Image             string `json:"image"`
	EstimatedReadTime int    `json:"estimated_read_time"`
}

// Comment is a reader comment attached to a blog.
type Comment struct {
	ID        int64  `json:"id"`
	Blog      int64  `json:"blog"`
	Name      string `json:"name"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// Feedback is a reader rating with an optional message.
type Feedback struct {
	ID          int64  `json:"id"`
	Blog        int64  `json:"blog"`
	Rating      int    `json:"rating"`
	Email       string `json:"email"`
	Message     string `json:"message"`
	SubmittedAt string `json:"submitted_at"`
}

// Story is a reader-submitted story awaiting moderation.
type Story struct {
	ID           int64  `json:"id"`
	StoryText    string `json:"story_text"`
	AllowPublish bool   `json:"allow_publish"`
	SubmittedAt  string `json:"submitted_at"`
}

// DashboardStats aggregates the numbers shown on the admin landing page.
type DashboardStats struct {
	BlogCount      int       `json:"blog_count"`
	CommentCount   int       `json:"comment_count"`
	AverageRating  float64   `json:"average_rating"`
	PendingStories int       `json:"pending_stories"`
	RecentBlogs    []Blog    `json:"recent_blogs"`
	RecentComments []Comment `json:"recent_comments"`
}
