package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"

	"github.com/abarbosa/redator-server/internal/api/http/handler"
	"github.com/abarbosa/redator-server/internal/api/http/middleware"
	"github.com/abarbosa/redator-server/internal/logger"
	"github.com/abarbosa/redator-server/internal/model"
)

// Router assembles the HTTP routes for the content backend.
type Router struct {
	articleService handler.ArticleService
	userService    handler.UserService
	mediaService   handler.MediaService
	sessionStore   model.SessionStore
	contextManager model.ContextManager
	db             handler.Pinger
	cookie         handler.SessionCookie
	corsOrigin     string
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(
	articleService handler.ArticleService,
	userService handler.UserService,
	mediaService handler.MediaService,
	sessionStore model.SessionStore,
	contextManager model.ContextManager,
	db handler.Pinger,
	cookie handler.SessionCookie,
	corsOrigin string,
	logger *logger.Logger,
) *Router {
	return &Router{
		articleService: articleService,
		userService:    userService,
		mediaService:   mediaService,
		sessionStore:   sessionStore,
		contextManager: contextManager,
		db:             db,
		cookie:         cookie,
		corsOrigin:     corsOrigin,
		logger:         logger,
	}
}

// Register wires middleware and routes and returns the root handler.
func (rt *Router) Register() http.Handler {
	logging := middleware.NewLogging(rt.logger)
	session := middleware.NewSession(rt.sessionStore, rt.contextManager, rt.cookie.Name, rt.logger)

	articleHandler := handler.NewArticle(rt.articleService, rt.contextManager, rt.logger)
	userHandler := handler.NewUser(rt.userService, rt.contextManager, rt.cookie, rt.logger)
	mediaHandler := handler.NewMedia(rt.mediaService, rt.logger)
	healthHandler := handler.NewHealth(rt.db, rt.logger)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(logging.Handle)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{rt.corsOrigin},
		AllowedMethods:   []string{"GET", "HEAD", "PUT", "PATCH", "POST", "DELETE"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"Set-Cookie"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Use(session.Load)

	r.Route("/articles", func(r chi.Router) {
		r.Post("/cadastro", articleHandler.Create)
		r.Get("/search", articleHandler.Search)
		r.Get("/all", articleHandler.ListAll)
		r.With(session.RequireSession).Get("/", articleHandler.ListForCaller)
		r.Post("/like/{articleID}", articleHandler.Like)
		r.Get("/{articleID}", articleHandler.Get)
		r.Put("/{articleID}", articleHandler.Update)
		r.Delete("/delete/{articleID}", articleHandler.Delete)
	})

	r.Route("/users", func(r chi.Router) {
		r.Post("/cadastro", userHandler.Register)
		r.Post("/login", userHandler.Login)
		r.Get("/session", userHandler.CurrentSession)
		r.Post("/logout", userHandler.Logout)
		r.Get("/getAll", userHandler.ListAll)
		r.With(session.RequireSession).Post("/likeArticle/{articleID}", userHandler.LikeArticle)
		r.With(session.RequireSession).Post("/unlikeArticle/{articleID}", userHandler.UnlikeArticle)
		r.Get("/{userID}", userHandler.Get)
		r.Put("/{userID}", userHandler.Update)
		r.Delete("/{userID}", userHandler.Delete)
	})

	r.Route("/uploads", func(r chi.Router) {
		r.With(session.RequireSession).Post("/", mediaHandler.Upload)
		r.Get("/{key}", mediaHandler.Download)
	})

	r.Get("/healthz", healthHandler.Check)

	return r
}
