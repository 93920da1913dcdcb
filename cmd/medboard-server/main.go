package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/medboard/medboard/internal/config"
	"github.com/medboard/medboard/internal/domain/appointment"
	"github.com/medboard/medboard/internal/domain/department"
	"github.com/medboard/medboard/internal/domain/pages"
	"github.com/medboard/medboard/internal/domain/patient"
	"github.com/medboard/medboard/internal/domain/staff"
	"github.com/medboard/medboard/internal/platform/db"
	"github.com/medboard/medboard/internal/platform/fixtures"
	"github.com/medboard/medboard/internal/platform/middleware"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "medboard-server",
		Short: "Hospital administration API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(fixturesCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !cfg.UsesPostgres() {
				return fmt.Errorf("DATABASE_URL is not set")
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			count, err := db.NewMigrator(pool).Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !cfg.UsesPostgres() {
				return fmt.Errorf("DATABASE_URL is not set")
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			statuses, err := db.NewMigrator(pool).Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			fmt.Println("---------- ---------------------------------------- ---------- --------------------")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	})

	return cmd
}

func fixturesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fixtures",
		Short: "Manage seed fixtures",
	}

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Run integrity checks against the fixture set",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			var (
				data *fixtures.Data
				err  error
			)
			if dir != "" {
				data, err = fixtures.LoadDir(dir)
			} else {
				data, err = fixtures.Load()
			}
			if err != nil {
				return err
			}

			warnings := data.Validate()
			fmt.Printf("%d patients, %d staff, %d appointments, %d departments\n",
				len(data.Patients), len(data.Staff), len(data.Appointments), len(data.Departments))
			if len(warnings) == 0 {
				fmt.Println("No findings.")
				return nil
			}
			for _, w := range warnings {
				fmt.Println("WARNING:", w)
			}
			return nil
		},
	}
	validateCmd.Flags().String("dir", "", "Load fixtures from a directory instead of the embedded set")
	cmd.AddCommand(validateCmd)

	return cmd
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	ctx := context.Background()

	// Repositories: Postgres when DATABASE_URL is set, fixture-seeded
	// in-memory stores otherwise.
	var (
		patientRepo patient.Repository
		staffRepo   staff.Repository
		apptRepo    appointment.Repository
		deptRepo    department.Repository
		pool        *pgxpool.Pool
	)
	if cfg.UsesPostgres() {
		pool, err = db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer pool.Close()
		logger.Info().Msg("connected to database")

		patientRepo = patient.NewPGRepo(pool)
		staffRepo = staff.NewPGRepo(pool)
		apptRepo = appointment.NewPGRepo(pool)
		deptRepo = department.NewPGRepo(pool)
	} else {
		var (
			data *fixtures.Data
			err  error
		)
		if cfg.FixtureDir != "" {
			data, err = fixtures.LoadDir(cfg.FixtureDir)
		} else {
			data, err = fixtures.Load()
		}
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to load fixtures")
		}
		for _, w := range data.Validate() {
			logger.Warn().Str("finding", w).Msg("fixture validation")
		}

		latency := time.Duration(cfg.SimulatedLatencyMS) * time.Millisecond
		patientRepo = patient.NewMemRepo(data.Patients, latency)
		staffRepo = staff.NewMemRepo(data.Staff, latency)
		apptRepo = appointment.NewMemRepo(data.Appointments, latency)
		deptRepo = department.NewMemRepo(data.Departments, latency)
		logger.Info().
			Int("patients", len(data.Patients)).
			Int("staff", len(data.Staff)).
			Int("appointments", len(data.Appointments)).
			Int("departments", len(data.Departments)).
			Msg("seeded in-memory repositories")
	}

	// Services
	patientSvc := patient.NewService(patientRepo)
	staffSvc := staff.NewService(staffRepo)
	apptSvc := appointment.NewService(apptRepo)
	deptSvc := department.NewService(deptRepo)
	pagesSvc := pages.NewService(patientRepo, staffRepo, apptRepo, deptRepo, logger)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{"Content-Type", "X-Request-ID"},
	}))

	// Health checks
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})
	if pool != nil {
		e.GET("/health/db", db.HealthHandler(pool))
	}

	apiV1 := e.Group("/api/v1")

	patient.NewHandler(patientSvc).RegisterRoutes(apiV1)
	staff.NewHandler(staffSvc).RegisterRoutes(apiV1)
	appointment.NewHandler(apptSvc).RegisterRoutes(apiV1)
	department.NewHandler(deptSvc).RegisterRoutes(apiV1)
	pages.NewHandler(pagesSvc).RegisterRoutes(apiV1)

	// Start server
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("forced shutdown")
		return err
	}

	logger.Info().Msg("server stopped")
	return nil
}
