package cmd

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/abdullahkhan155/smart-cart-landing-sub000/config"
	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/api"
	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/constants"
	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/lumber"
	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/metrics"
	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/opentelemetry"
	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/server"
	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/service/intake"
	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/store/localdemo"
	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/store/remotedemo"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// RootCommand will setup and return the root command
func RootCommand() *cobra.Command {
	rootCmd := cobra.Command{
		Use:     "smartcart",
		Long:    `smartcart captures "request a demo" leads from the smart cart landing pages and stores them in supabase, falling back to a local sqlite file.`,
		Version: constants.BinaryVersion,
		RunE:    run,
	}

	// define flags used for this command
	AttachCLIFlags(&rootCmd)

	return &rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd)
	if err != nil {
		fmt.Printf("Failed to load config: %v", err)
		return err
	}

	// patch logconfig file location with root level log file location
	if cfg.LogFile != "" {
		cfg.LogConfig.FileLocation = filepath.Join(cfg.LogFile, "smartcart.log")
	}

	// You can also use logrus implementation
	// by using lumber.InstanceLogrusLogger
	logger, err := lumber.NewLogger(&cfg.LogConfig, cfg.Verbose, lumber.InstanceZapLogger)
	if err != nil {
		log.Printf("could not instantiate logger %s", err.Error())
		return err
	}

	// create a context that we can cancel
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// initialize tracer
	if cfg.Tracing.OtelEndpoint != "" {
		tracerCleanup := opentelemetry.InitTracer(ctx, cfg, logger)
		defer func() {
			if tracerErr := tracerCleanup(context.Background()); tracerErr != nil {
				logger.Errorf("Failed to cleanup the tracer %v", tracerErr)
			}
		}()
	}

	remoteProvider := remotedemo.NewProvider(cfg.Remote, logger)
	defer func() {
		if cerr := remoteProvider.Close(); cerr != nil {
			logger.Errorf("failed to close remote demo store %v", cerr)
		}
	}()
	localStore := localdemo.New(cfg.LocalStore, logger)
	logger.Infof("local demo store file %s", localStore.Path())

	recorder := metrics.NewRecorder()
	intakeService := intake.New(remoteProvider, localStore, recorder, logger)

	// cancelled on SIGTERM/SIGINT, which also fails the health API
	signalCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	router := api.New(signalCtx, cfg, intakeService, recorder, recorder.Handler(), logger)

	g, gctx := errgroup.WithContext(signalCtx)
	g.Go(func() error {
		return server.ListenAndServe(gctx, &router, cfg, logger)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Debugf("main: received close signal - attempting graceful shutdown ....")
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Errorf("error while running http server %v", err)
		return err
	}
	logger.Debugf("main: all goroutines have finished.")
	return nil
}
