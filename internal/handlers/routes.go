package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/brandwave/social-backend/internal/store"
)

// registerEntityRoutes wires the shared CRUD contract under one path prefix.
// The owner route is registered before /{id} so mux matches it first.
func registerEntityRoutes[T store.Document](r *mux.Router, prefix string, col *store.Collection[T], msg entityMessages) {
	base := "/api/" + prefix
	r.HandleFunc(base, createDoc(col, msg)).Methods("POST")
	r.HandleFunc(base, listDocs(col)).Methods("GET")
	r.HandleFunc(base+"/user/{userId}", listDocsByOwner(col, msg)).Methods("GET")
	r.HandleFunc(base+"/{id}", getDoc(col, msg)).Methods("GET")
	r.HandleFunc(base+"/{id}", updateDoc(col, msg)).Methods("PUT")
	r.HandleFunc(base+"/{id}", deleteDoc(col, msg)).Methods("DELETE")
}

// RegisterRoutes mounts every API route on r. The auth gate middleware is
// applied by the caller; register and login are on its skip list.
func RegisterRoutes(r *mux.Router, h *Handler) {
	// User routes: public register/login plus the authenticated CRUD set.
	r.HandleFunc("/api/user/register", h.Register).Methods("POST")
	r.HandleFunc("/api/user/login", h.Login).Methods("POST")
	r.HandleFunc("/api/user", h.CreateUser).Methods("POST")
	r.HandleFunc("/api/user", h.ListUsers).Methods("GET")
	r.HandleFunc("/api/user/{id}", h.GetUser).Methods("GET")
	r.HandleFunc("/api/user/{id}", h.UpdateUser).Methods("PUT")
	r.HandleFunc("/api/user/{id}", h.DeleteUser).Methods("DELETE")

	registerEntityRoutes(r, "social-profile", h.socialProfiles, entityMessages{
		notFound:   "Social profile not found",
		emptyOwner: "No social profiles found for this user",
		deleted:    "Social profile deleted successfully",
	})
	registerEntityRoutes(r, "analytics", h.analytics, entityMessages{
		notFound:   "Analytics entry not found",
		emptyOwner: "No analytics data found for this user",
		deleted:    "Analytics entry deleted successfully",
	})
	registerEntityRoutes(r, "content-calendar", h.contentCalendars, entityMessages{
		notFound:   "Content calendar entry not found",
		emptyOwner: "No content calendar entries found for this user",
		deleted:    "Content calendar entry deleted successfully",
	})
	registerEntityRoutes(r, "content-suggestion", h.contentSuggestions, entityMessages{
		notFound:   "Content suggestion not found",
		emptyOwner: "No content suggestions found for this user",
		deleted:    "Content suggestion deleted successfully",
	})
	registerEntityRoutes(r, "custom-asset", h.customAssets, entityMessages{
		notFound:   "Custom asset not found",
		emptyOwner: "No custom assets found for this user",
		deleted:    "Custom asset deleted successfully",
	})
	registerEntityRoutes(r, "goal", h.goals, entityMessages{
		notFound:   "Goal not found",
		emptyOwner: "No goals found for this user",
		deleted:    "Goal deleted successfully",
	})
	registerEntityRoutes(r, "notification", h.notifications, entityMessages{
		notFound:   "Notification not found",
		emptyOwner: "No notifications found for this user",
		deleted:    "Notification deleted successfully",
	})
	registerEntityRoutes(r, "post-history", h.postHistories, entityMessages{
		notFound:   "Post history not found",
		emptyOwner: "No post histories found for this user",
		deleted:    "Post history deleted successfully",
	})
	registerEntityRoutes(r, "scheduled-post", h.scheduledPosts, entityMessages{
		notFound:   "Scheduled post not found",
		emptyOwner: "No scheduled posts found for this user",
		deleted:    "Scheduled post deleted successfully",
	})
	registerEntityRoutes(r, "team", h.teams, entityMessages{
		notFound:   "Team not found",
		emptyOwner: "No teams found for this user",
		deleted:    "Team deleted successfully",
	})
	registerEntityRoutes(r, "template", h.templates, entityMessages{
		notFound:   "Template not found",
		emptyOwner: "No templates found for this user",
		deleted:    "Template deleted successfully",
	})
	registerEntityRoutes(r, "user-role", h.userRoles, entityMessages{
		notFound:   "User role not found",
		emptyOwner: "No user roles found for this user",
		deleted:    "User role deleted successfully",
	})

	// Catch-all for unmatched paths.
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	})
}
