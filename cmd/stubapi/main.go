// stubapi sirve una réplica en memoria del API remoto de la plataforma,
// para desarrollar el cliente sin backend real.
//
// Cuentas seed: super@shop1.com y admin@shop1.com, password admin123.
package main

import (
	"github.com/jhoicas/tienda-client/internal/infrastructure/stubapi"
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
		Level: "info",
	})

	app := stubapi.New(stubapi.Config{
		JWTSecret:     cfg.JWT.Secret,
		JWTExpiration: cfg.JWT.Expiration,
		JWTIssuer:     cfg.JWT.Issuer,
	}, log)

	log.Info().Str("addr", cfg.Stub.Addr()).Msg("stub del API escuchando")
	if err := app.Listen(cfg.Stub.Addr()); err != nil {
		log.Fatal().Err(err).Msg("servidor stub")
	}
}
