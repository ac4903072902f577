package httpapi

import (
	"net/http"
)

func (s *Server) handleListInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := s.invoices.List(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondResult(w, http.StatusOK, invoices)
}

func (s *Server) handleInvoiceDetails(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondServiceError(w, err)
		return
	}
	details, err := s.invoices.Details(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondResult(w, http.StatusOK, details)
}

func (s *Server) handleInvoicePDF(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondServiceError(w, err)
		return
	}
	pdf, err := s.invoices.RenderPDF(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "inline; filename=invoice.pdf")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

type archiveURLResult struct {
	URL string `json:"url"`
}

func (s *Server) handleInvoiceArchiveURL(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondServiceError(w, err)
		return
	}
	url, err := s.invoices.ArchiveURL(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondResult(w, http.StatusOK, archiveURLResult{URL: url})
}
