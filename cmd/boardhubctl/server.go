package main

import (
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"boardhub/pkg/access"
	"boardhub/pkg/config"
	"boardhub/pkg/db"
	"boardhub/pkg/recency"
	"boardhub/pkg/server"
	"boardhub/pkg/server/endpoints"
	"boardhub/pkg/server/middleware"
	gormstore "boardhub/pkg/server/store/gorm"
)

func defaultBindAddress() string {
	if addr := os.Getenv("BIND_ADDRESS"); addr != "" {
		return addr
	}
	return "0.0.0.0"
}

func defaultPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8000"
}

func defaultPortInt() int {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			return p
		}
	}
	return 8000
}

func newLogger() *logrus.Logger {
	log := logrus.New()
	if level, err := logrus.ParseLevel(os.Getenv("BOARDHUB_LOG_LEVEL")); err == nil {
		log.SetLevel(level)
	}
	return log
}

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the boardhub application server",
	Long: `Run the boardhub application server

To run the server requires the environment variables BOARDHUB_TOKEN_SECRET and DATABASE_URL.

By default, database migrations are run on startup. Use --no-migrate to skip.`,
	Run: func(cmd *cobra.Command, args []string) {
		log := newLogger()

		// Validate required environment variables first (fail fast)
		if os.Getenv("BOARDHUB_TOKEN_SECRET") == "" {
			fmt.Fprintln(os.Stderr, "BOARDHUB_TOKEN_SECRET environment variable is required")
			os.Exit(1)
		}

		if os.Getenv("DATABASE_URL") == "" {
			fmt.Fprintln(os.Stderr, "DATABASE_URL environment variable is required")
			os.Exit(1)
		}

		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
			os.Exit(1)
		}
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
			os.Exit(1)
		}

		// Run migrations unless --no-migrate is set
		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		if !noMigrate {
			log.Info("Running database migrations...")
			if err := runMigrations(); err != nil {
				fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
				os.Exit(1)
			}
		}

		database, err := db.Connect(db.Config{})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to connect to DB: %v\n", err)
			os.Exit(1)
		}

		// A dead Redis only disables recency tracking. Board listings
		// degrade to empty recents rather than failing.
		redisClient, err := recency.NewClient(cfg.RedisURL)
		if err != nil {
			log.WithError(err).Warn("redis unavailable, recency tracking disabled")
			redisClient = nil
		}

		host, _ := cmd.Flags().GetString("bind-address")
		port, _ := cmd.Flags().GetString("port")
		s := server.NewServer(database, cfg, log, host, port)

		s.UsersStore = gormstore.NewUsersStore(database)
		projects := gormstore.NewProjectsStore(database)
		s.ProjectsStore = projects
		s.BoardsStore = gormstore.NewBoardsStore(database)
		s.ListsStore = gormstore.NewListsStore(database)
		s.ItemsStore = gormstore.NewItemsStore(database)
		s.LabelsStore = gormstore.NewLabelsStore(database)
		s.CommentsStore = gormstore.NewCommentsStore(database)
		s.AttachmentsStore = gormstore.NewAttachmentsStore(database)
		s.NotificationsStore = gormstore.NewNotificationsStore(database)
		s.HealthStore = gormstore.NewHealthStore(database)

		s.Evaluator = access.NewEvaluator(projects)
		s.Resolver = access.NewResolver(projects)
		s.Recency = recency.NewTracker(redisClient, log)

		s.AuthMiddleware = middleware.NewAuthenticator(
			[]byte(cfg.TokenSecret),
			s.UsersStore,
			func(ip net.IP) bool { return cfg.IsTrustedProxy(ip.String()) },
		)

		endpoints.RegisterAll(s)

		log.Infof("Running server at http://%s:%s...", host, port)
		log.Fatal(s.Start())
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("port", "p", defaultPort(), "server listen port")
	serverCmd.Flags().StringP("bind-address", "b", defaultBindAddress(), "server bind address")
	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
}
