package server

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gustavor29/Tablon/internal/auth"
	"github.com/gustavor29/Tablon/internal/feed"
	"github.com/gustavor29/Tablon/internal/handler"
	"github.com/gustavor29/Tablon/internal/household"
	"github.com/gustavor29/Tablon/internal/list"
	"github.com/gustavor29/Tablon/internal/store"
	"github.com/gustavor29/Tablon/internal/websocket"
)

type Server struct {
	db              *sql.DB
	feed            *feed.Feed
	listStore       *store.ListStore
	householdStore  *store.HouseholdStore
	archiveStore    *store.ArchiveStore
	suggestionStore *store.SuggestionStore
	userStore       *store.UserStore
	jwt             *auth.JWT
	householdH      *handler.HouseholdHandler
	listH           *handler.ListHandler
	suggestionH     *handler.SuggestionHandler
	userH           *handler.UserHandler
	logger          *slog.Logger
}

func New(db *sql.DB, jwtSecret string, logger *slog.Logger) *Server {
	f := feed.New()
	listStore := store.NewListStore(db, f)
	householdStore := store.NewHouseholdStore(db)
	archiveStore := store.NewArchiveStore(db, f)
	suggestionStore := store.NewSuggestionStore(db)
	userStore := store.NewUserStore(db)

	householdSvc := household.NewService(householdStore, userStore, logger.With("component", "household"))
	listSvc := list.NewService(listStore, archiveStore, suggestionStore, logger.With("component", "list"))

	return &Server{
		db:              db,
		feed:            f,
		listStore:       listStore,
		householdStore:  householdStore,
		archiveStore:    archiveStore,
		suggestionStore: suggestionStore,
		userStore:       userStore,
		jwt:             auth.NewJWT(jwtSecret),
		householdH:      handler.NewHouseholdHandler(householdSvc, logger.With("component", "household_handler")),
		listH:           handler.NewListHandler(listSvc, logger.With("component", "list_handler")),
		suggestionH:     handler.NewSuggestionHandler(suggestionStore, logger.With("component", "suggestion_handler")),
		userH:           handler.NewUserHandler(userStore, logger.With("component", "user_handler")),
		logger:          logger,
	}
}

// JWT returns the token signer, used by registration flows and tests
// to mint tokens outside the request path.
func (s *Server) JWT() *auth.JWT {
	return s.jwt
}

func (s *Server) Router() http.Handler {
	api := http.NewServeMux()

	// Households
	api.HandleFunc("POST /api/households", s.householdH.Create)
	api.HandleFunc("POST /api/households/join", s.householdH.Join)

	// Shared list
	api.HandleFunc("GET /api/households/{id}/items", s.listH.ListItems)
	api.HandleFunc("POST /api/households/{id}/items", s.listH.CreateItem)
	api.HandleFunc("PUT /api/households/{id}/items/{item_id}", s.listH.UpdateItem)
	api.HandleFunc("POST /api/households/{id}/items/remove", s.listH.RemoveItem)

	// Archives
	api.HandleFunc("POST /api/households/{id}/archive", s.listH.Archive)
	api.HandleFunc("GET /api/households/{id}/archives", s.listH.ListArchives)
	api.HandleFunc("GET /api/archives/{archive_id}", s.listH.GetArchive)

	// Live snapshot stream
	api.Handle("GET /api/households/{id}/live", websocket.HandleList(s.listStore, s.logger.With("component", "websocket")))

	// Suggestions
	api.HandleFunc("GET /api/suggestions", s.suggestionH.Search)
	api.HandleFunc("GET /api/suggestions/unit", s.suggestionH.LastUnit)

	// Current user
	api.HandleFunc("GET /api/me", s.userH.Me)
	api.HandleFunc("POST /api/me", s.userH.Register)

	authMw := auth.RequireAuth(s.jwt)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.healthCheck)
	mux.Handle("/api/", authMw(api))

	return s.logRequests(mux)
}

func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
