package server

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/invoizy/invoizy/pkg/apperror"
	"github.com/invoizy/invoizy/pkg/editor"
	"github.com/invoizy/invoizy/pkg/invoice"
	"github.com/invoizy/invoizy/pkg/money"
	"github.com/invoizy/invoizy/pkg/render"
)

func (s *Server) handleGetInvoice(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.session.View())
}

type setFieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

func (s *Server) handleSetField(w http.ResponseWriter, r *http.Request) {
	var req setFieldRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := s.session.SetField(req.Field, req.Value); err != nil {
		s.writeError(w, apperror.NewBadRequestError(err.Error()))
		return
	}
	s.writeJSON(w, http.StatusOK, s.session.View())
}

type itemRequest struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
}

func (r itemRequest) lineItem() invoice.LineItem {
	return invoice.LineItem{Description: r.Description, Quantity: r.Quantity, UnitPrice: r.UnitPrice}
}

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if !s.decode(w, r, &req) {
		return
	}
	h := s.session.AddItem(req.lineItem())
	s.writeJSON(w, http.StatusCreated, map[string]any{
		"id":      string(h),
		"invoice": s.session.View(),
	})
}

func (s *Server) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if !s.decode(w, r, &req) {
		return
	}
	h := invoice.Handle(mux.Vars(r)["id"])
	if err := s.session.UpdateItem(h, req.lineItem()); err != nil {
		s.writeError(w, apperror.NewNotFoundError("item"))
		return
	}
	s.writeJSON(w, http.StatusOK, s.session.View())
}

func (s *Server) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	h := invoice.Handle(mux.Vars(r)["id"])
	if err := s.session.RemoveItem(h); err != nil {
		s.writeError(w, apperror.NewNotFoundError("item"))
		return
	}
	s.writeJSON(w, http.StatusOK, s.session.View())
}

// settingsRequest updates any subset of the document settings; absent
// fields are left alone.
type settingsRequest struct {
	Template     *string `json:"template"`
	Currency     *string `json:"currency"`
	Status       *string `json:"status"`
	ShowDiscount *bool   `json:"showDiscount"`
	ShowTax      *bool   `json:"showTax"`
}

func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	var req settingsRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Template != nil {
		t, ok := invoice.ParseTemplate(*req.Template)
		if !ok {
			s.writeError(w, apperror.NewBadRequestError("unknown template: "+*req.Template))
			return
		}
		s.session.SetTemplate(t)
	}
	if req.Currency != nil {
		c, ok := money.ParseCurrency(*req.Currency)
		if !ok {
			s.writeError(w, apperror.NewBadRequestError("unknown currency: "+*req.Currency))
			return
		}
		s.session.SetCurrency(c)
	}
	if req.Status != nil {
		st, ok := invoice.ParseStatus(*req.Status)
		if !ok {
			s.writeError(w, apperror.NewBadRequestError("unknown status: "+*req.Status))
			return
		}
		s.session.SetStatus(st)
	}
	if req.ShowDiscount != nil {
		s.session.ShowDiscount(*req.ShowDiscount)
	}
	if req.ShowTax != nil {
		s.session.ShowTax(*req.ShowTax)
	}
	s.writeJSON(w, http.StatusOK, s.session.View())
}

func (s *Server) handleUploadLogo(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		s.writeError(w, apperror.NewBadRequestError("invalid multipart form"))
		return
	}
	file, _, err := r.FormFile("logo")
	if err != nil {
		s.writeError(w, apperror.NewBadRequestError("missing logo file"))
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(io.LimitReader(file, s.maxUpload))
	if err != nil {
		s.writeError(w, apperror.ErrInternalServer)
		return
	}
	// A non-image upload is ignored, not an error: the view comes back
	// unchanged.
	if err := s.session.UploadLogo(raw); err != nil {
		s.writeError(w, apperror.ErrInternalServer)
		return
	}
	s.writeJSON(w, http.StatusOK, s.session.View())
}

func (s *Server) handleClearLogo(w http.ResponseWriter, r *http.Request) {
	s.session.ClearLogo()
	s.writeJSON(w, http.StatusOK, s.session.View())
}

type positionRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (s *Server) handleMoveLogo(w http.ResponseWriter, r *http.Request) {
	var req positionRequest
	if !s.decode(w, r, &req) {
		return
	}
	s.session.MoveLogo(req.X, req.Y)
	s.writeJSON(w, http.StatusOK, s.session.View())
}

type sizeRequest struct {
	Size float64 `json:"size"`
}

func (s *Server) handleResizeLogo(w http.ResponseWriter, r *http.Request) {
	var req sizeRequest
	if !s.decode(w, r, &req) {
		return
	}
	s.session.ResizeLogo(req.Size)
	s.writeJSON(w, http.StatusOK, s.session.View())
}

func (s *Server) handleNewInvoice(w http.ResponseWriter, r *http.Request) {
	confirmed := r.URL.Query().Get("confirm") == "true"
	if err := s.session.NewInvoice(confirmed); err != nil {
		if errors.Is(err, editor.ErrNotConfirmed) {
			s.writeError(w, apperror.NewBadRequestError("reset requires confirm=true"))
			return
		}
		s.writeError(w, apperror.ErrInternalServer)
		return
	}
	s.writeJSON(w, http.StatusOK, s.session.View())
}

func (s *Server) handlePDF(w http.ResponseWriter, r *http.Request) {
	out, err := render.PDF(s.session.Document())
	if err != nil {
		s.log.Errorf("rendering PDF: %v", err)
		s.writeError(w, apperror.ErrInternalServer)
		return
	}
	w.Header().Set("Content-Disposition", "attachment; filename=invoice.pdf")
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Length", strconv.Itoa(len(out)))
	w.Write(out)
}
