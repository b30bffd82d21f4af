package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/TFMV/sfseed/pkg/describe"
	"github.com/TFMV/sfseed/pkg/generate"
	"github.com/TFMV/sfseed/pkg/writers"
	"github.com/TFMV/sfseed/version"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// maxRows caps a single HTTP generation request.
const maxRows = 100000

// ServerOptions configures the API server.
type ServerOptions struct {
	Port    string
	Prefork bool
}

// Server holds the Fiber app instance
type Server struct {
	app  *fiber.App
	opts ServerOptions
}

// NewServer initializes a new Fiber instance
func NewServer(opts ServerOptions) *Server {
	app := fiber.New(fiber.Config{
		IdleTimeout:  10 * time.Second, // Prevents idle connections
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		Prefork:      opts.Prefork,
	})

	// Middleware
	app.Use(recover.New()) // Auto-recovers from panics
	app.Use(logger.New())  // Logs all requests

	// Routes
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})

	app.Get("/version", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service": "sfseed API",
			"version": version.Version,
			"build":   version.BuildDate,
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	app.Post("/generate", handleGenerate)

	return &Server{app: app, opts: opts}
}

// GetApp exposes the underlying Fiber app, mainly for tests.
func (s *Server) GetApp() *fiber.App {
	return s.app
}

// handleGenerate accepts a describe JSON body and streams back a CSV of
// generated rows.
func handleGenerate(c *fiber.Ctx) error {
	rows, err := strconv.Atoi(c.Query("rows", "10"))
	if err != nil || rows < 1 || rows > maxRows {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("rows must be between 1 and %d", maxRows))
	}

	seed := time.Now().UnixNano()
	if q := c.Query("seed"); q != "" {
		seed, err = strconv.ParseInt(q, 10, 64)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "seed must be an integer")
		}
	}

	model, err := describe.Load(c.Body())
	if err != nil {
		if errors.Is(err, describe.ErrNoFields) || errors.Is(err, describe.ErrNoUsableFields) {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	opts := generate.Options{
		PersonRecordType: c.Query("person-record-type"),
	}
	if skip := c.Query("skip"); skip != "" {
		opts.SkipFields = strings.Split(skip, ",")
	}

	g := generate.New(model, rand.New(rand.NewSource(seed)), opts)

	var buf bytes.Buffer
	w := writers.NewCSVStreamWriter(&buf, false)
	if err := w.WriteHeader(g.Header()); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	for i := 0; i < rows; i++ {
		if err := w.WriteRow(g.RowValues()); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
	}
	if err := w.Close(); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	return c.Send(buf.Bytes())
}

// Start runs the Fiber server and handles graceful shutdown
func (s *Server) Start() error {
	port := s.opts.Port
	if port == "" {
		port = "3000" // Default port
	}

	// Channel to listen for OS termination signals (graceful shutdown)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.app.Listen(":" + port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	// Create a timeout context for the shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.Shutdown(ctx)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}
