// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/canonical/workflow-service/internal/config"
	"github.com/canonical/workflow-service/internal/db"
	"github.com/canonical/workflow-service/internal/identity"
	"github.com/canonical/workflow-service/internal/logging"
	"github.com/canonical/workflow-service/internal/mail"
	"github.com/canonical/workflow-service/internal/monitoring/prometheus"
	"github.com/canonical/workflow-service/internal/storage"
	"github.com/canonical/workflow-service/internal/tracing"
	"github.com/canonical/workflow-service/pkg/access"
	"github.com/canonical/workflow-service/pkg/authentication"
	"github.com/canonical/workflow-service/pkg/company"
	"github.com/canonical/workflow-service/pkg/notify"
	"github.com/canonical/workflow-service/pkg/reports"
	"github.com/canonical/workflow-service/pkg/templates"
	"github.com/canonical/workflow-service/pkg/web"
	"github.com/canonical/workflow-service/pkg/workflow"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		main()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("workflow-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	var mailClient mail.MailClientInterface
	if specs.MailEnabled {
		mailClient, err = mail.NewClient(
			mail.Config{
				Host:     specs.SMTPHost,
				Port:     specs.SMTPPort,
				Username: specs.SMTPUsername,
				Password: specs.SMTPPassword,
				From:     specs.MailFrom,
			},
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to create mail client: %v", err)
		}
		logger.Info("Mail delivery is enabled")
	} else {
		mailClient = mail.NewNoopClient(logger)
		logger.Info("Using noop mail client")
	}

	var authenticate func(http.Handler) http.Handler
	if specs.AuthenticationEnabled {
		verifier, err := authentication.NewJWTAuthenticator(
			context.Background(),
			specs.OIDCIssuer,
			specs.JWKSURL,
			specs.AllowedSubjects,
			specs.RequiredScope,
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to create JWT authenticator: %v", err)
		}
		authenticate = authentication.NewMiddleware(verifier, tracer, monitor, logger).Authenticate()
	} else {
		authenticate = identity.NewMiddleware(tracer, monitor, logger).HTTPMiddleware
		logger.Info("Authentication is disabled, trusting the identity header")
	}

	dispatcher := notify.NewDispatcher(mailClient, tracer, monitor, logger)

	evaluator := access.NewEvaluator(s, tracer, monitor, logger)
	accessMiddleware := access.NewMiddleware(evaluator, tracer, logger)

	workflowService := workflow.NewService(s, dbClient, dispatcher, tracer, monitor, logger)
	templateService := templates.NewService(s, tracer, monitor, logger)
	companyService := company.NewService(s, mailClient, tracer, monitor, logger)
	reportService := reports.NewService(s, tracer, monitor, logger)

	router := web.NewRouter(
		workflow.NewAPI(workflowService, logger),
		templates.NewAPI(templateService, logger),
		company.NewAPI(companyService, accessMiddleware, logger),
		reports.NewAPI(reportService, logger),
		accessMiddleware,
		authenticate,
		dbClient,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}

func main() {
	if err := serve(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}
