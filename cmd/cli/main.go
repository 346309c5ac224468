package main

import (
	"context"
	"os"
	"time"

	"github.com/spf13/afero"

	"github.com/jhoicas/tienda-client/internal/application/guard"
	"github.com/jhoicas/tienda-client/internal/application/session"
	"github.com/jhoicas/tienda-client/internal/infrastructure/credstore"
	"github.com/jhoicas/tienda-client/internal/infrastructure/httpapi"
	"github.com/jhoicas/tienda-client/internal/interfaces/cli"
	"github.com/jhoicas/tienda-client/pkg/config"
	"github.com/jhoicas/tienda-client/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "warn",
	})

	// La sesión es única por proceso; el controller es su único dueño.
	sess := session.NewSession()
	store := credstore.NewFileStore(afero.NewOsFs(), cfg.Creds.File)
	api := httpapi.New(
		cfg.API.BaseURL,
		sess,
		time.Duration(cfg.API.TimeoutSeconds)*time.Second,
		log,
	)
	ctrl := session.NewController(api.Auth, store, sess, log)

	// Hidratación única al arranque; el guard no deja pasar rutas protegidas antes.
	ctrl.Bootstrap()

	router := cli.NewRouter(&cli.Deps{
		Session: ctrl,
		Guard:   guard.New(sess),
		API:     api,
		Log:     log,
		Out:     os.Stdout,
	})

	if err := router.Run(context.Background(), os.Args[1:]); err != nil {
		log.Error().Err(err).Msg("comando fallido")
		os.Exit(1)
	}
}
