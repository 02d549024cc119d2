package api

import (
	"context"
	"net/http"

	"github.com/limbo/lifedash/pkg/entity"
	"github.com/limbo/lifedash/pkg/httputil"
)

func (s *Server) CreateWatchlistItem(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var item entity.WatchlistItem
	if !decodeBody(w, r, logger, "create watchlist item", &item) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), mutationTimeout)
	defer cancel()
	created, err := s.watchlistService.Create(ctx, &item)
	if err != nil {
		writeServiceError(w, logger, "create watchlist item", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, created)
	logger.Info("watchlist item created")
}

func (s *Server) ListWatchlist(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()
	items, err := s.watchlistService.List(ctx)
	if err != nil {
		writeServiceError(w, logger, "list watchlist", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, items)
	logger.Info("watchlist provided")
}

func (s *Server) GetWatchlistItem(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := pathID(w, r, logger, "get watchlist item")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()
	item, err := s.watchlistService.Get(ctx, id)
	if err != nil {
		writeServiceError(w, logger, "get watchlist item", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, item)
	logger.Info("watchlist item provided")
}

func (s *Server) UpdateWatchlistItem(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := pathID(w, r, logger, "update watchlist item")
	if !ok {
		return
	}
	var item entity.WatchlistItem
	if !decodeBody(w, r, logger, "update watchlist item", &item) {
		return
	}
	item.ID = id
	ctx, cancel := context.WithTimeout(r.Context(), mutationTimeout)
	defer cancel()
	updated, err := s.watchlistService.Update(ctx, &item)
	if err != nil {
		writeServiceError(w, logger, "update watchlist item", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, updated)
	logger.Info("watchlist item updated")
}

func (s *Server) DeleteWatchlistItem(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := pathID(w, r, logger, "delete watchlist item")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), mutationTimeout)
	defer cancel()
	if err := s.watchlistService.Delete(ctx, id); err != nil {
		writeServiceError(w, logger, "delete watchlist item", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("watchlist item deleted")
}

func (s *Server) WatchlistSummary(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()
	summary, err := s.watchlistService.Summary(ctx)
	if err != nil {
		writeServiceError(w, logger, "summarize watchlist", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, summary)
	logger.Info("watchlist summary provided")
}
