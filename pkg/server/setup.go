package server

import (
	"context"
	"net/http"
	"time"

	"github.com/abdullahkhan155/smart-cart-landing-sub000/config"
	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/api"
	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/constants"
	errs "github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/errors"
	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/lumber"
	"github.com/gin-gonic/gin"
)

// ListenAndServe initializes a server to respond to HTTP network requests.
// It returns once ctx is cancelled and in-flight requests have drained, or
// when the listener fails.
func ListenAndServe(ctx context.Context, router *api.Router, cfg *config.Config, logger lumber.Logger) error {
	// set gin to release mode
	if cfg.Env != constants.Dev {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Infof("Setting up http handler")

	errChan := make(chan error, 1)

	// HTTP server instance
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Handler(),
		ReadHeaderTimeout: constants.ReadHeaderTimeout,
	}

	go func() {
		logger.Infof("Starting server on port %s", cfg.Port)
		// service connections
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Errorf("listen: %#v", err)
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Infof("Caller has requested graceful shutdown. shutting down the server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), gracefulTimeout(cfg))
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil && err != context.Canceled {
			logger.Errorf("Server Shutdown: error %v", err)
			if err == context.DeadlineExceeded {
				return errs.ErrTimeoutExceeded
			}
			return err
		}
		return nil
	case err := <-errChan:
		return err
	}
}

func gracefulTimeout(cfg *config.Config) time.Duration {
	if cfg.GracefulTimeout > 0 {
		return cfg.GracefulTimeout
	}
	return constants.DefaultGracefulTimeout
}
