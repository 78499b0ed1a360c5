package api

import (
	"github.com/gorilla/mux"

	"github.com/ecosort/ecosort/internal/api/recovery"
	"github.com/ecosort/ecosort/internal/auth"
	"github.com/ecosort/ecosort/internal/blob"
	"github.com/ecosort/ecosort/internal/classify"
	"github.com/ecosort/ecosort/internal/services"
	"github.com/ecosort/ecosort/internal/store"
)

// NewRouter creates the HTTP router with all API routes.
// health may be nil; the health endpoint then always reports UP.
// adminKey guards the seed endpoint; empty disables it.
func NewRouter(st store.Store, blobs *blob.LocalStore, classifier classify.Classifier, health ServiceHealth, adminKey string) *mux.Router {
	router := mux.NewRouter()

	// Global middlewares
	router.Use(recovery.Middleware)

	// Domain services
	userService := services.NewUserService(st)
	profileService := services.NewProfileService(st)
	wasteService := services.NewWasteService(st, blobs, classifier)
	leaderboardService := services.NewLeaderboardService(st)
	referenceService := services.NewReferenceService(st)

	// Handlers
	healthHandler := NewHealthHandler(health)
	userHandler := NewUserHandler(userService)
	profileHandler := NewProfileHandler(profileService)
	wasteHandler := NewWasteHandler(wasteService)
	referenceHandler := NewReferenceHandler(referenceService, leaderboardService)
	uploadHandler := NewUploadHandler(blobs)

	// Public endpoints: signup, health, and the blob transport. The upload
	// URL handed out by POST /api/uploads must work with a plain PUT.
	router.HandleFunc("/api/health", healthHandler.CheckHealth).Methods("GET")
	router.HandleFunc("/api/users", userHandler.CreateUser).Methods("POST")
	router.HandleFunc("/uploads/{imageId}", uploadHandler.PutImage).Methods("PUT")
	router.HandleFunc("/uploads/{imageId}", uploadHandler.GetImage).Methods("GET")

	// Operator endpoints use a dedicated admin key; user API keys must not
	// be able to replace the reference catalogs.
	admin := router.PathPrefix("/api/admin").Subrouter()
	admin.Use(AdminAuthMiddleware(adminKey))
	admin.HandleFunc("/seed", referenceHandler.Seed).Methods("POST")

	// Everything else requires a valid API key.
	authed := router.PathPrefix("/api").Subrouter()
	authed.Use(AuthMiddleware(auth.NewStoreAuthorizer(st.Users())))

	authed.HandleFunc("/users/me", userHandler.GetUser).Methods("GET")

	authed.HandleFunc("/profile", profileHandler.GetProfile).Methods("GET")
	authed.HandleFunc("/profile", profileHandler.CreateProfile).Methods("POST")

	authed.HandleFunc("/waste-items", wasteHandler.ListWasteItems).Methods("GET")
	authed.HandleFunc("/waste-items/analyze", wasteHandler.AnalyzeWaste).Methods("POST")
	authed.HandleFunc("/waste-items/{itemId}/recycle", wasteHandler.MarkRecycled).Methods("POST")

	authed.HandleFunc("/tips", referenceHandler.ListTips).Methods("GET")
	authed.HandleFunc("/rewards", referenceHandler.ListRewards).Methods("GET")
	authed.HandleFunc("/leaderboard", referenceHandler.Leaderboard).Methods("GET")

	authed.HandleFunc("/uploads", uploadHandler.CreateUpload).Methods("POST")

	return router
}
