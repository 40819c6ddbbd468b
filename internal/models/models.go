package models

import "time"

// Platform values accepted for social entities (profiles, posts, analytics).
var Platforms = []string{"Facebook", "Instagram", "Twitter", "YouTube"}

// TemplatePlatforms additionally allows "General" for cross-platform templates.
var TemplatePlatforms = []string{"Facebook", "Instagram", "Twitter", "YouTube", "General"}

// Roles used by teams and user-role assignments.
var Roles = []string{"Admin", "Manager", "Editor", "Viewer"}

// Scheduled post statuses. "Scheduled" is the initial state; "Posted" and
// "Error" are terminal and set by an external publishing collaborator via
// the normal update endpoint.
const (
	StatusScheduled = "Scheduled"
	StatusPosted    = "Posted"
	StatusError     = "Error"
)

var ScheduledPostStatuses = []string{StatusScheduled, StatusPosted, StatusError}

var NotificationTypes = []string{"Info", "Warning", "Error", "Success"}

var CustomAssetTypes = []string{"image", "icon", "font", "video"}

var ContentSuggestionFormats = []string{"video", "image"}

var TemplateTypes = []string{"image", "video", "carousel"}

type User struct {
	ID             string   `json:"id"`
	Email          string   `json:"email"`
	Password       string   `json:"password"` // bcrypt hash, never plaintext
	Name           string   `json:"name"`
	Industry       *string  `json:"industry,omitempty"`
	TargetAudience *string  `json:"targetAudience,omitempty"`
	SocialProfiles []string `json:"socialProfiles"`
}

type SocialProfile struct {
	ID           string     `json:"id"`
	Platform     string     `json:"platform"`
	UserID       string     `json:"userId"`
	AccessToken  string     `json:"accessToken"`
	RefreshToken *string    `json:"refreshToken,omitempty"`
	ExpiresIn    *time.Time `json:"expiresIn,omitempty"`
	ProfileID    string     `json:"profileId"`
	Username     *string    `json:"username,omitempty"`
	DisplayName  *string    `json:"displayName,omitempty"`
}

// Engagement is the per-post metrics snapshot carried by Analytics.
type Engagement struct {
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
	Shares   int `json:"shares"`
	Retweets int `json:"retweets"`
	Views    int `json:"views"`
}

type Analytics struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userId"`
	Platform   string     `json:"platform"`
	PostID     string     `json:"postId"`
	Engagement Engagement `json:"engagement"`
	Timestamp  time.Time  `json:"timestamp"`
}

type ContentCalendar struct {
	ID             string   `json:"id"`
	UserID         string   `json:"userId"`
	ScheduledPosts []string `json:"scheduledPosts"`
}

type ContentSuggestion struct {
	ID            string     `json:"id"`
	UserID        string     `json:"userId"`
	Topic         string     `json:"topic"`
	Format        *string    `json:"format,omitempty"`
	Hashtags      []string   `json:"hashtags"`
	SuggestedTime *time.Time `json:"suggestedTime,omitempty"`
	Accepted      bool       `json:"accepted"`
	Rejected      bool       `json:"rejected"`
}

type CustomAsset struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	URL    string `json:"url"`
}

type Goal struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Metric      string     `json:"metric"`
	TargetValue *float64   `json:"targetValue"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Progress    float64    `json:"progress"`
}

type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

type PostHistory struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	PostID      string    `json:"postId"`
	Platform    string    `json:"platform"`
	Content     string    `json:"content"`
	CreatedTime time.Time `json:"createdTime"`
}

type ScheduledPost struct {
	ID            string     `json:"id"`
	UserID        string     `json:"userId"`
	Content       string     `json:"content"`
	Platform      string     `json:"platform"`
	ScheduledTime *time.Time `json:"scheduledTime"`
	Status        string     `json:"status"`
	ErrorMessage  *string    `json:"errorMessage,omitempty"`
}

type TeamMember struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

type Team struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Members []TeamMember `json:"members"`
}

type TemplateElement struct {
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties,omitempty"`
}

type Template struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Type     string            `json:"type"`
	Platform string            `json:"platform"`
	ImageURL string            `json:"imageUrl"`
	Elements []TemplateElement `json:"elements"`
}

type UserRole struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Role   string `json:"role"`
}
