package api

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/minta-io/minta/internal/api/presenter"
	"github.com/minta-io/minta/internal/core"
)

type ItemPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func itemID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	return id, err == nil
}

func (s *Server) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := log.Ctx(ctx)

	var payload ItemPayload
	if err := DecodePayload(r, &payload, false); err != nil {
		logger.Warn().Err(err).Msg("failed to decode item payload")
		presenter.Error(w, r, "invalid request payload", http.StatusBadRequest)
		return
	}

	item, err := s.itemService.Create(ctx, core.Item{
		Name:        payload.Name,
		Description: payload.Description,
	})
	if err != nil {
		presenter.Err(w, r, err, "creating item failed")
		return
	}

	logger.Info().Int64("item_id", item.ID).Msg("item created")
	presenter.JSON(w, r, item, http.StatusCreated)
}

func (s *Server) handleGetItem(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(r)
	if !ok {
		presenter.Error(w, r, "invalid item id", http.StatusBadRequest)
		return
	}

	item, err := s.itemService.Get(r.Context(), id)
	if err != nil {
		presenter.Err(w, r, err, "fetching item failed")
		return
	}
	presenter.JSON(w, r, item, http.StatusOK)
}

func (s *Server) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := log.Ctx(ctx)

	id, ok := itemID(r)
	if !ok {
		presenter.Error(w, r, "invalid item id", http.StatusBadRequest)
		return
	}

	var payload ItemPayload
	if err := DecodePayload(r, &payload, false); err != nil {
		logger.Warn().Err(err).Msg("failed to decode item payload")
		presenter.Error(w, r, "invalid request payload", http.StatusBadRequest)
		return
	}

	item, err := s.itemService.Update(ctx, core.Item{
		ID:          id,
		Name:        payload.Name,
		Description: payload.Description,
	})
	if err != nil {
		presenter.Err(w, r, err, "updating item failed")
		return
	}

	logger.Info().Int64("item_id", item.ID).Msg("item updated")
	presenter.JSON(w, r, item, http.StatusOK)
}

func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := log.Ctx(ctx)

	id, ok := itemID(r)
	if !ok {
		presenter.Error(w, r, "invalid item id", http.StatusBadRequest)
		return
	}

	if err := s.itemService.Delete(ctx, id); err != nil {
		presenter.Err(w, r, err, "deleting item failed")
		return
	}

	logger.Info().Int64("item_id", id).Msg("item deleted")
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.itemService.List(r.Context())
	if err != nil {
		presenter.Err(w, r, err, "listing items failed")
		return
	}
	presenter.JSON(w, r, items, http.StatusOK)
}
