package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/eleccion-api/internal/application/auth"
	"github.com/jhoicas/eleccion-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	GateUC      *usecase.GateUseCase
	VotingUC    *usecase.VotingUseCase
	VoterUC     *usecase.VoterUseCase
	ImportUC    *usecase.ImportUseCase
	CandidateUC *usecase.CandidateUseCase
	TallyUC     *usecase.TallyUseCase
	ReportUC    *usecase.ReportUseCase
	JWTSecret   string
	PhotoDir    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/voter-login", authHandler.VoterLogin)

	voteHandler := NewVoteHandler(deps.VotingUC, deps.GateUC)

	// Estado del interruptor (público: el frontend lo consulta antes del login)
	api.Get("/settings/voting", voteHandler.GateStatus)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Interruptor de votación (admin)
	protected.Put("/settings/voting", RequireAdmin(), voteHandler.SetGate)

	// Votos (votante autenticado)
	votes := protected.Group("/votes", RequireVoter())
	votes.Post("/", voteHandler.Cast)
	votes.Get("/me", voteHandler.MyVotes)

	// Padrón (admin)
	voters := protected.Group("/voters", RequireAdmin())
	voterHandler := NewVoterHandler(deps.VoterUC, deps.ImportUC)
	voters.Get("/", voterHandler.List)
	voters.Post("/", voterHandler.Create)
	voters.Post("/import", voterHandler.Import)
	voters.Get("/:id", voterHandler.GetByID)
	voters.Put("/:id", voterHandler.Update)
	voters.Patch("/:id/status", voterHandler.UpdateStatus)
	voters.Delete("/:id", voterHandler.Delete)

	// Candidatos (lectura para cualquier autenticado, escritura admin)
	candidates := protected.Group("/candidates")
	candidateHandler := NewCandidateHandler(deps.CandidateUC, deps.PhotoDir)
	candidates.Get("/", candidateHandler.List)
	candidates.Get("/:id", candidateHandler.GetByID)
	candidates.Post("/", RequireAdmin(), candidateHandler.Create)
	candidates.Put("/:id", RequireAdmin(), candidateHandler.Update)
	candidates.Delete("/:id", RequireAdmin(), candidateHandler.Delete)

	// Resultados (admin)
	results := protected.Group("/results", RequireAdmin())
	tallyHandler := NewTallyHandler(deps.TallyUC, deps.ReportUC)
	results.Get("/", tallyHandler.Tally)
	results.Get("/pdf", tallyHandler.ResultsPDF)
}
