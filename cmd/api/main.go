package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/employee-directory-api/internal/application/auth"
	"github.com/jhoicas/employee-directory-api/internal/application/usecase"
	"github.com/jhoicas/employee-directory-api/internal/infrastructure/store"
	"github.com/jhoicas/employee-directory-api/internal/interfaces/gql"
	httpRouter "github.com/jhoicas/employee-directory-api/internal/interfaces/http"
	"github.com/jhoicas/employee-directory-api/pkg/config"
	"github.com/jhoicas/employee-directory-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 30*time.Second)
	st, err := store.Open(connectCtx, cfg.DB, log)
	cancelConnect()
	if err != nil {
		log.Fatal().Err(err).Msg("conexión al almacén")
	}
	log.Info().Str("driver", st.Driver).Msg("almacén listo")

	authUC := auth.NewAuthUseCase(st.Users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	employeeUC := usecase.NewEmployeeUseCase(st.Employees)

	schema, err := gql.NewSchema(gql.Deps{
		Auth:      authUC,
		Employees: employeeUC,
		Log:       log.Named("graphql"),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("construir esquema GraphQL")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:     cfg.App.Name,
		Schema:      schema,
		GraphQLPath: cfg.HTTP.GraphQLPath,
		JWTSecret:   cfg.JWT.Secret,
		Log:         log,
	})

	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr()).Str("path", cfg.HTTP.GraphQLPath).Msg("servidor GraphQL escuchando")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if err := st.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("cierre del almacén")
	}

	log.Info().Msg("aplicación detenida")
}
