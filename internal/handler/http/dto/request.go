package dto

// LoginRequest carries the admin credentials to forward upstream.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// PublishRequest toggles a story's publication approval. A pointer keeps
// an explicit false distinguishable from an absent field.
type PublishRequest struct {
	AllowPublish *bool `json:"allow_publish" binding:"required"`
}
