package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/hyppe-labs/scoriz/internal/contact"
	"github.com/hyppe-labs/scoriz/internal/model"
	"github.com/hyppe-labs/scoriz/internal/report"
)

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) analyse(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL  string `json:"url"`
		Lang string `json:"lang"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	target, err := validateURL(req.URL)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if s.analyzer == nil {
		writeError(w, http.StatusInternalServerError, "analysis service not configured: missing API key")
		return
	}

	quota := s.ledger.Check(r.Context())
	if !quota.Allowed {
		writeJSON(w, http.StatusTooManyRequests, map[string]any{
			"error": "daily analysis limit reached",
			"quota": quota,
		})
		return
	}

	lang := req.Lang
	if lang == "" {
		lang = negotiateLanguage(r.Header.Get("Accept-Language"))
	}

	result, err := s.analyzer.Analyze(r.Context(), target, lang)
	if err != nil {
		zap.L().Error("analysis failed",
			zap.String("url", target),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	if err := s.ledger.Consume(r.Context()); err != nil {
		zap.L().Warn("quota not recorded", zap.Error(err))
	}

	now := s.now().UTC()
	saved := model.SavedAnalysis{
		ID:     strconv.FormatInt(now.UnixNano(), 10),
		URL:    target,
		Date:   now,
		Result: result,
	}
	if err := s.store.SaveAnalysis(r.Context(), saved); err != nil {
		zap.L().Warn("analysis not persisted",
			zap.String("url", target),
			zap.Error(err),
		)
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) contact(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if s.contacts == nil {
		writeJSON(w, http.StatusBadGateway, map[string]string{
			"message": "Erreur lors de l'enregistrement",
			"error":   "contact service not configured",
		})
		return
	}

	if err := s.contacts.Capture(r.Context(), req.Email); err != nil {
		if errors.Is(err, contact.ErrInvalidEmail) {
			writeError(w, http.StatusBadRequest, "invalid email address")
			return
		}
		zap.L().Error("contact capture failed", zap.Error(err))
		writeJSON(w, http.StatusBadGateway, map[string]string{
			"message": "Erreur lors de l'enregistrement",
			"error":   err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Success",
		"data":    map[string]string{"email": strings.TrimSpace(req.Email)},
	})
}

func (s *Server) listAnalyses(w http.ResponseWriter, r *http.Request) {
	list, err := s.store.ListAnalyses(r.Context())
	if err != nil {
		zap.L().Warn("list analyses failed", zap.Error(err))
		list = []model.SavedAnalysis{}
	}
	if list == nil {
		list = []model.SavedAnalysis{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) deleteAnalysis(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.DeleteAnalysis(r.Context(), id); err != nil {
		zap.L().Error("delete analysis failed",
			zap.String("id", id),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "delete failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted", "id": id})
}

func (s *Server) exportAnalysis(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	list, err := s.store.ListAnalyses(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "export failed")
		return
	}
	for _, saved := range list {
		if saved.ID != id {
			continue
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="analyse-`+id+`.xlsx"`)
		if err := report.WriteXLSX(w, saved); err != nil {
			zap.L().Error("xlsx export failed",
				zap.String("id", id),
				zap.Error(err),
			)
		}
		return
	}
	writeError(w, http.StatusNotFound, "analysis not found")
}

func (s *Server) usage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.ledger.Check(r.Context()))
}

func validateURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", eris.New("url is required")
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", eris.New("url must be absolute http or https")
	}
	return u.String(), nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
