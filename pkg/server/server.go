/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package server

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"

	"github.com/nscaledev/uni-booker/pkg/server/handler"
	"github.com/nscaledev/uni-booker/pkg/store"

	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

// Options defines how the HTTP server listens.
type Options struct {
	// ListenAddress tells the server what to listen on.
	ListenAddress string

	// ReadTimeout defines how long before we give up on the client,
	// this should be fairly short.
	ReadTimeout time.Duration

	// ReadHeaderTimeout defines how long before we give up on the client,
	// this should be fairly short.
	ReadHeaderTimeout time.Duration

	// WriteTimeout defines how long we take to respond before we give up.
	WriteTimeout time.Duration

	// ShutdownTimeout bounds how long in-flight requests get to finish.
	ShutdownTimeout time.Duration

	// SeedFile replaces the built in bookings when set.
	SeedFile string

	// RequestLog logs every request when set.
	RequestLog bool
}

func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.ListenAddress, "listen-address", ":3001", "API listener address.")
	f.DurationVar(&o.ReadTimeout, "read-timeout", time.Second, "How long to wait for the client to send the request body.")
	f.DurationVar(&o.ReadHeaderTimeout, "read-header-timeout", time.Second, "How long to wait for the client to send headers.")
	f.DurationVar(&o.WriteTimeout, "write-timeout", 10*time.Second, "How long to wait for the API to respond to the client.")
	f.DurationVar(&o.ShutdownTimeout, "shutdown-timeout", 10*time.Second, "How long to wait for requests to drain on shutdown.")
	f.StringVar(&o.SeedFile, "seed-file", "", "YAML file of bookings to start with, replacing the built in set.")
	f.BoolVar(&o.RequestLog, "request-log", false, "Log every request.")
}

// Server is the booking twin.
type Server struct {
	// Options are server specific options e.g. listener address etc.
	Options Options

	// ZapOptions configure logging.
	ZapOptions zap.Options

	// HandlerOptions sets options for the HTTP handler.
	HandlerOptions handler.Options
}

func (s *Server) AddFlags(goflags *flag.FlagSet, flags *pflag.FlagSet) {
	s.ZapOptions.BindFlags(goflags)

	s.Options.AddFlags(flags)
	s.HandlerOptions.AddFlags(flags)
}

func (s *Server) SetupLogging() {
	s.ZapOptions.TimeEncoder = zapcore.RFC3339NanoTimeEncoder

	log.SetLogger(zap.New(zap.UseFlagOptions(&s.ZapOptions)))
}

// Store builds the booking store, from the seed file if one is configured.
func (s *Server) Store() (*store.Store, error) {
	if s.Options.SeedFile == "" {
		return store.New()
	}

	data, err := os.ReadFile(s.Options.SeedFile)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}

	return store.NewFromSeed(data)
}

// GetServer returns an HTTP server serving the booking API.
func (s *Server) GetServer(ctx context.Context, bookings *store.Store) (*http.Server, error) {
	router, err := NewRouter(ctx, bookings, &s.HandlerOptions, s.Options.RequestLog)
	if err != nil {
		return nil, err
	}

	server := &http.Server{
		Addr:              s.Options.ListenAddress,
		ReadTimeout:       s.Options.ReadTimeout,
		ReadHeaderTimeout: s.Options.ReadHeaderTimeout,
		WriteTimeout:      s.Options.WriteTimeout,
		Handler:           router,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	return server, nil
}

// Run serves until the context is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, server *http.Server) error {
	logger := log.FromContext(ctx)

	errs := make(chan error, 1)

	go func() {
		logger.Info("listening", "address", server.Addr)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}

		close(errs)
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.Options.ShutdownTimeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}

// NewRouter returns the booking API and admin endpoints with the standard
// middleware stack applied.
func NewRouter(ctx context.Context, bookings *store.Store, options *handler.Options, requestLog bool) (http.Handler, error) {
	h, err := handler.New(bookings, options)
	if err != nil {
		return nil, err
	}

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.Recoverer)
	router.Use(Logger(log.FromContext(ctx), requestLog))

	h.Routes(router)

	return router, nil
}
