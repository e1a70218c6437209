package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"boardhub/pkg/access"
	"boardhub/pkg/config"
	"boardhub/pkg/recency"
	"boardhub/pkg/server/middleware"
	"boardhub/pkg/server/store"
)

// Server bundles the router with every dependency the endpoints need.
// Endpoints pull stores off the server at registration time.
type Server struct {
	Router *mux.Router
	DB     *gorm.DB
	Config *config.Config
	Log    *logrus.Logger

	AuthMiddleware *middleware.Authenticator

	Evaluator *access.Evaluator
	Resolver  *access.Resolver
	Recency   *recency.Tracker

	UsersStore         store.UsersStore
	ProjectsStore      store.ProjectsStore
	BoardsStore        store.BoardsStore
	ListsStore         store.ListsStore
	ItemsStore         store.ItemsStore
	LabelsStore        store.LabelsStore
	CommentsStore      store.CommentsStore
	AttachmentsStore   store.AttachmentsStore
	NotificationsStore store.NotificationsStore
	HealthStore        store.HealthStore

	srv *http.Server
}

func NewServer(db *gorm.DB, cfg *config.Config, log *logrus.Logger, host string, port string) *Server {
	router := mux.NewRouter().UseEncodedPath()
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
		Addr:    host + ":" + port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Router: router,
		DB:     db,
		Config: cfg,
		Log:    log,
		srv:    srv,
	}
}

func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}
