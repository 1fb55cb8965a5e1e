package router

import (
	"time"

	"nutriapp/internal/config"
	"nutriapp/internal/handler"
	"nutriapp/internal/middleware"
	"nutriapp/internal/repository"
	"nutriapp/internal/service"
	"nutriapp/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	nutricionistaRepo := repository.NewNutricionistaRepository(db)
	notificacionRepo := repository.NewNotificacionRepository(db)
	preguntaRepo := repository.NewPreguntaRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	tokenSvc := service.NewTokenService(cfg.JWTSecret)
	authSvc := service.NewAuthService(usuarioRepo, tokenSvc)
	nutricionistaSvc := service.NewNutricionistaService(nutricionistaRepo, dispatcher, cfg.EmailAdministrador)
	notificacionSvc := service.NewNotificacionService(notificacionRepo)
	preguntaSvc := service.NewPreguntaService(preguntaRepo, rdb)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(usuarioRepo)
	nutricionistasH := handler.NewNutricionistasHandler(nutricionistaSvc)
	notificacionesH := handler.NewNotificacionesHandler(notificacionSvc)
	preguntasH := handler.NewPreguntasHandler(preguntaSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))
	r.Static("/img", cfg.ImgPath)

	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/registrar-usuario", authH.Registrar)
	}

	preguntas := r.Group("/preguntas")
	{
		preguntas.GET("/listar", preguntasH.Listar)
		preguntas.GET("/listar/opciones/:id_pregunta", preguntasH.ListarOpciones)
	}

	// Protected routes — token cookie required
	tokenMW := middleware.TokenAuth(tokenSvc)
	usuario := r.Group("/usuario", tokenMW)
	{
		usuario.GET("/listar", usuariosH.Listar)
		usuario.PUT("/modificar", usuariosH.Modificar)
		usuario.PUT("/cambiar-contrasena", authH.CambiarContrasena)

		// Endpoints para los usuarios
		usuario.GET("/listar/nutricionistas/:usuario_id", nutricionistasH.Listar)
		usuario.POST("/validar/nutricionista", nutricionistasH.Validar)
		usuario.POST("/guardar/nutricionista", nutricionistasH.Guardar)
		usuario.POST("/solicitar/nutricionista", nutricionistasH.Solicitar)
		usuario.POST("/asignarme/nutricionista", nutricionistasH.Asignarme)
		usuario.GET("/nutricionista/:nutricionista_id/usuarios", nutricionistasH.ListarAsignados)

		usuario.POST("/notificacion", notificacionesH.Crear)
		usuario.GET("/notificaciones/:usuario_id", notificacionesH.PorUsuario)
		usuario.DELETE("/notificacion/eliminar", notificacionesH.Eliminar)
		usuario.GET("/notificacion/detalle/:id_notificacion", notificacionesH.Detalle)
		usuario.POST("/notificacion/imagen", preguntasH.ImagenCombinacion)

		// Endpoints para los nutricionistas
		usuario.PUT("/nutricionista/aprobar/recomendacion", notificacionesH.CambiarEstado)
		usuario.GET("/nutricionista/recomendaciones/:usuario_id", notificacionesH.Pendientes)
		usuario.DELETE("/nutricionista/desenlazar/usuario", nutricionistasH.Desenlazar)
		usuario.POST("/nutricionista/asignaciones/mes", nutricionistasH.AsignacionesPorMes)
		usuario.POST("/nutricionista/contador-recomendaciones", nutricionistasH.ContadorEstados)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
