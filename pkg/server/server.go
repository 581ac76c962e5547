// Package server exposes the editing session over HTTP. Handlers are
// thin: they decode the request, call one session operation and return
// the refreshed view, so the recalculate-then-save rule stays enforced
// in the editor, not here.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/invoizy/invoizy/pkg/apperror"
	"github.com/invoizy/invoizy/pkg/editor"
	"github.com/invoizy/invoizy/pkg/logger"
)

type Server struct {
	session   *editor.Session
	log       *logger.Logger
	maxUpload int64
}

func New(session *editor.Session, maxUpload int64, log *logger.Logger) *Server {
	return &Server{session: session, log: log, maxUpload: maxUpload}
}

// Router registers the editing API.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/invoice", s.handleGetInvoice).Methods("GET")
	r.HandleFunc("/api/invoice/fields", s.handleSetField).Methods("PUT")
	r.HandleFunc("/api/invoice/items", s.handleAddItem).Methods("POST")
	r.HandleFunc("/api/invoice/items/{id}", s.handleUpdateItem).Methods("PUT")
	r.HandleFunc("/api/invoice/items/{id}", s.handleRemoveItem).Methods("DELETE")
	r.HandleFunc("/api/invoice/settings", s.handleSettings).Methods("PUT")
	r.HandleFunc("/api/invoice/logo", s.handleUploadLogo).Methods("POST")
	r.HandleFunc("/api/invoice/logo", s.handleClearLogo).Methods("DELETE")
	r.HandleFunc("/api/invoice/logo/position", s.handleMoveLogo).Methods("PUT")
	r.HandleFunc("/api/invoice/logo/size", s.handleResizeLogo).Methods("PUT")
	r.HandleFunc("/api/invoice/new", s.handleNewInvoice).Methods("POST")
	r.HandleFunc("/api/invoice/pdf", s.handlePDF).Methods("GET")
	return r
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Errorf("writing response: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, appErr *apperror.AppError) {
	s.writeJSON(w, appErr.Code, appErr)
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.writeError(w, apperror.NewBadRequestError("invalid JSON body"))
		return false
	}
	return true
}
