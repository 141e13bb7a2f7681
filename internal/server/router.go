package server

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter builds the API router. Everything except login requires a valid
// session token.
func NewRouter(handler *Handler, tokens TokenParser, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(cors.Handler(corsOptions(allowedOrigins)))

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", handler.Login)

		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(tokens))

			r.Post("/chunks", handler.ProcessChunk)
			r.Get("/chunks/{taskID}/progress", handler.ChunkProgress)

			r.Post("/quiz/start", handler.StartQuiz)
			r.Get("/quiz/{sessionID}", handler.QuizSession)
			r.Post("/quiz/{sessionID}/answers", handler.SubmitAnswer)
		})
	})

	return r
}
