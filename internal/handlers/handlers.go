package handlers

import (
	"database/sql"
	"net/http"

	"github.com/brandwave/social-backend/internal/auth"
	"github.com/brandwave/social-backend/internal/models"
	"github.com/brandwave/social-backend/internal/store"
)

// Handler owns the process-wide store handle and one collection per entity.
type Handler struct {
	db     *sql.DB
	tokens *auth.TokenManager
	users  *store.UserStore

	socialProfiles     *store.Collection[*models.SocialProfile]
	analytics          *store.Collection[*models.Analytics]
	contentCalendars   *store.Collection[*models.ContentCalendar]
	contentSuggestions *store.Collection[*models.ContentSuggestion]
	customAssets       *store.Collection[*models.CustomAsset]
	goals              *store.Collection[*models.Goal]
	notifications      *store.Collection[*models.Notification]
	postHistories      *store.Collection[*models.PostHistory]
	scheduledPosts     *store.Collection[*models.ScheduledPost]
	teams              *store.Collection[*models.Team]
	templates          *store.Collection[*models.Template]
	userRoles          *store.Collection[*models.UserRole]
}

func New(db *sql.DB, tokens *auth.TokenManager) *Handler {
	return &Handler{
		db:     db,
		tokens: tokens,
		users:  store.NewUserStore(db),

		socialProfiles: store.NewCollection(db, "social_profiles",
			func() *models.SocialProfile { return &models.SocialProfile{} }),
		analytics: store.NewCollection(db, "analytics",
			func() *models.Analytics { return &models.Analytics{} }),
		contentCalendars: store.NewCollection(db, "content_calendars",
			func() *models.ContentCalendar { return &models.ContentCalendar{} }),
		contentSuggestions: store.NewCollection(db, "content_suggestions",
			func() *models.ContentSuggestion { return &models.ContentSuggestion{} }),
		customAssets: store.NewCollection(db, "custom_assets",
			func() *models.CustomAsset { return &models.CustomAsset{} }),
		goals: store.NewCollection(db, "goals",
			func() *models.Goal { return &models.Goal{} }),
		notifications: store.NewCollection(db, "notifications",
			func() *models.Notification { return &models.Notification{} }),
		postHistories: store.NewCollection(db, "post_histories",
			func() *models.PostHistory { return &models.PostHistory{} }),
		scheduledPosts: store.NewCollection(db, "scheduled_posts",
			func() *models.ScheduledPost { return &models.ScheduledPost{} }),
		teams: store.NewCollection(db, "teams",
			func() *models.Team { return &models.Team{} }),
		templates: store.NewCollection(db, "templates",
			func() *models.Template { return &models.Template{} }),
		userRoles: store.NewCollection(db, "user_roles",
			func() *models.UserRole { return &models.UserRole{} }),
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
