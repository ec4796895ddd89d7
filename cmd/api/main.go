package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/sistema-ventas/internal/application/analytics"
	"github.com/tu-usuario/sistema-ventas/internal/application/asignacion"
	"github.com/tu-usuario/sistema-ventas/internal/application/usecase"
	"github.com/tu-usuario/sistema-ventas/internal/application/ventas"
	"github.com/tu-usuario/sistema-ventas/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/sistema-ventas/internal/interfaces/http"
	"github.com/tu-usuario/sistema-ventas/pkg/config"
	"github.com/tu-usuario/sistema-ventas/pkg/logger"
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
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	tiendaRepo := postgres.NewTiendaRepository(pool)
	proveedorRepo := postgres.NewProveedorRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	ptRepo := postgres.NewProductoTiendaRepository(pool)
	ventaRepo := postgres.NewVentaRepository(pool)
	estadisticaRepo := postgres.NewEstadisticaRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	tiendaUC := usecase.NewTiendaUseCase(tiendaRepo)
	proveedorUC := usecase.NewProveedorUseCase(proveedorRepo)
	clienteUC := usecase.NewClienteUseCase(clienteRepo)
	productoUC := usecase.NewProductoUseCase(productoRepo, ptRepo)
	asignacionUC := asignacion.NewUseCase(txRunner, tiendaRepo, productoRepo, ptRepo)
	ventasUC := ventas.NewUseCase(txRunner, clienteRepo, tiendaRepo, ventaRepo)
	dashboardUC := analytics.NewDashboardUseCase(estadisticaRepo, clienteRepo, tiendaRepo, productoRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(httpRouter.RequestLogger(log))
	app.Use(httpRouter.Metrics())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Sistema de Ventas API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		TiendaUC:     tiendaUC,
		ProveedorUC:  proveedorUC,
		ClienteUC:    clienteUC,
		ProductoUC:   productoUC,
		AsignacionUC: asignacionUC,
		VentasUC:     ventasUC,
		DashboardUC:  dashboardUC,
	})

	go func() {
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

	log.Info().Msg("aplicación detenida")
}
