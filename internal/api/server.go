package api

import (
	"net/http"

	"github.com/minta-io/minta/internal/api/middleware"
	"github.com/minta-io/minta/internal/core"
	"github.com/minta-io/minta/internal/service"
	"github.com/minta-io/minta/internal/token"
)

type Server struct {
	tokenService *service.TokenService
	itemService  *service.ItemService
}

func NewServer(
	resolver core.SecretResolver,
	issuer *token.Issuer,
	items core.ItemStore,
) *Server {
	return &Server{
		tokenService: service.NewTokenService(resolver, issuer),
		itemService:  service.NewItemService(items),
	}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	// public routes
	mux.HandleFunc("GET "+HealthCheckRoute, s.handleHealth)
	mux.HandleFunc("GET "+AboutRoute, s.handleAbout)

	// token issuance
	mux.HandleFunc("POST "+GenerateTokenRoute, s.handleGenerateToken)

	// item CRUD
	mux.HandleFunc("POST "+ItemsRoute, s.handleCreateItem)
	mux.HandleFunc("GET "+ItemsRoute, s.handleListItems)
	mux.HandleFunc("GET "+ItemByIDRoute, s.handleGetItem)
	mux.HandleFunc("PUT "+ItemByIDRoute, s.handleUpdateItem)
	mux.HandleFunc("DELETE "+ItemByIDRoute, s.handleDeleteItem)

	return middleware.Recover(
		middleware.CorrelationID(
			middleware.Logging(
				mux)))
}
