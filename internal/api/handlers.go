package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/lifedash/internal/error_values"
	"github.com/limbo/lifedash/internal/repository"
	"github.com/limbo/lifedash/internal/service"
	"github.com/limbo/lifedash/pkg/dateutil"
	"github.com/limbo/lifedash/pkg/httputil"
)

// writeServiceError maps a service error onto a status code. Unexpected errors are
// logged with their cause and answered with a generic message.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrValidation),
		errors.Is(err, errorvalues.ErrInvalidDate),
		errors.Is(err, errorvalues.ErrUnknownRange):
		logger.Warn(op+" error: bad request", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request", err)
	case errors.Is(err, errorvalues.ErrNotFound):
		logger.Warn(op+" error: not found", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, errorvalues.ErrDuplicate):
		logger.Warn(op+" error: conflict", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusConflict, err.Error(), nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while trying to "+op, nil)
	}
}

// decodeBody reads the JSON body into v. It answers 400 itself and reports false on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, logger *slog.Logger, op string, v any) bool {
	defer r.Body.Close()
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(v); err != nil {
		logger.Error(op + " error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return false
	}
	return true
}

// pathID parses the {id} path value. It answers 400 itself and reports false on failure.
func pathID(w http.ResponseWriter, r *http.Request, logger *slog.Logger, op string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error(op + " error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid id in path value", nil)
		return uuid.UUID{}, false
	}
	return id, true
}

// queryDay reads the "date" query parameter, today when it is absent.
func (s *Server) queryDay(r *http.Request) (time.Time, error) {
	v := r.URL.Query().Get("date")
	if v == "" {
		return s.clock.Today(), nil
	}
	return dateutil.ParseDate(v, s.clock.Location)
}

// queryFilter reads from/to bounds. A single "date" parameter selects that day.
func queryFilter(r *http.Request) (repository.DateFilter, error) {
	q := r.URL.Query()
	var f repository.DateFilter
	if d := q.Get("date"); d != "" {
		f.From, f.To = &d, &d
	} else {
		if v := q.Get("from"); v != "" {
			f.From = &v
		}
		if v := q.Get("to"); v != "" {
			f.To = &v
		}
	}
	return f, service.ValidateFilter(f)
}

func (s *Server) Liveness(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"status": "ok"})
}
