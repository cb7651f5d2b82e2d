package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/dtroode/quizzme-server/internal/api/http/handler"
	"github.com/dtroode/quizzme-server/internal/api/http/middleware"
	"github.com/dtroode/quizzme-server/internal/logger"
	"github.com/dtroode/quizzme-server/internal/model"
	"github.com/dtroode/quizzme-server/internal/observability"
	"github.com/dtroode/quizzme-server/internal/web"
)

// DeckService is the deck store as seen by the router.
type DeckService interface {
	handler.DeckService
	handler.Pinger
}

// Config holds router parameters that do not come from services.
type Config struct {
	SignInURL      string
	AllowedOrigins []string
	GenerateRPS    float64
	GenerateBurst  int
}

// Router wires HTTP handlers and middleware for the quizzme API and pages.
type Router struct {
	deckService       DeckService
	generationService handler.GenerationService
	checkoutService   handler.CheckoutService
	// exportService is nil when object storage is not configured.
	exportService  handler.ExportService
	tokenManager   model.TokenManager
	contextManager model.ContextManager
	cfg            Config
	logger         *logger.Logger
}

// New creates new HTTP Router instance.
func New(
	deckService DeckService,
	generationService handler.GenerationService,
	checkoutService handler.CheckoutService,
	exportService handler.ExportService,
	tokenManager model.TokenManager,
	contextManager model.ContextManager,
	cfg Config,
	logger *logger.Logger,
) *Router {
	return &Router{
		deckService:       deckService,
		generationService: generationService,
		checkoutService:   checkoutService,
		exportService:     exportService,
		tokenManager:      tokenManager,
		contextManager:    contextManager,
		cfg:               cfg,
		logger:            logger,
	}
}

// Register builds the engine with every route and wraps it in CORS handling.
func (r *Router) Register() (http.Handler, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}

	engine := gin.New()
	engine.SetHTMLTemplate(tmpl)
	engine.Use(
		gin.Recovery(),
		otelgin.Middleware(observability.ServiceName),
		middleware.NewLogging(r.logger).Handle,
		middleware.Metrics,
	)

	engine.GET("/health", handler.Health(r.deckService))
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authenticate := middleware.NewAuthenticate(r.tokenManager, r.contextManager, r.cfg.SignInURL, r.logger)

	r.registerAPIRoutes(engine, authenticate)
	r.registerPageRoutes(engine, authenticate)

	return cors.New(cors.Options{
		AllowedOrigins:   r.cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(engine), nil
}

func (r *Router) registerAPIRoutes(engine *gin.Engine, authenticate *middleware.Authenticate) {
	deckHandler := handler.NewDeck(r.deckService, r.contextManager, r.logger)
	generateHandler := handler.NewGenerate(r.generationService, r.contextManager, r.logger)
	checkoutHandler := handler.NewCheckout(r.checkoutService, r.contextManager, r.logger)
	limiter := middleware.NewRateLimit(r.cfg.GenerateRPS, r.cfg.GenerateBurst, r.contextManager)

	// The checkout result is read by the public result page.
	engine.GET("/api/checkout_session", checkoutHandler.GetSession)

	api := engine.Group("/api", authenticate.API)
	api.GET("/decks", deckHandler.ListDecks)
	api.POST("/decks", deckHandler.SaveDeck)
	api.GET("/decks/cards", deckHandler.GetDeckCards)
	api.POST("/generate", limiter.Handle, generateHandler.Generate)
	api.POST("/checkout_session", checkoutHandler.CreateSession)

	if r.exportService != nil {
		exportHandler := handler.NewExport(r.exportService, r.contextManager, r.logger)
		api.POST("/decks/export", exportHandler.Create)
		api.GET("/decks/export", exportHandler.Download)
	}
}

func (r *Router) registerPageRoutes(engine *gin.Engine, authenticate *middleware.Authenticate) {
	pageHandler := handler.NewPage(r.deckService, r.generationService, r.checkoutService, r.contextManager, r.logger)

	engine.GET("/Get-Started", pageHandler.GetStarted)
	engine.GET("/result", pageHandler.Result)

	pages := engine.Group("/", authenticate.Page)
	pages.GET("/Dashboard", pageHandler.Dashboard)
	pages.GET("/flashcard", pageHandler.Flashcard)
	pages.GET("/Create", pageHandler.CreateForm)
	pages.POST("/Create", pageHandler.Create)
}
