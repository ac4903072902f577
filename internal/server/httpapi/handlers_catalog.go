package httpapi

import (
	"net/http"

	"github.com/codebyfaisal/e-store-pos/internal/server/models"
)

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.catalog.ListProducts(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondResult(w, http.StatusOK, products)
}

func (s *Server) handleProductMeta(w http.ResponseWriter, r *http.Request) {
	meta, err := s.catalog.ProductMeta(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondResult(w, http.StatusOK, meta)
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondServiceError(w, err)
		return
	}
	product, err := s.catalog.GetProduct(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondResult(w, http.StatusOK, product)
}

func (s *Server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var p models.Product
	if err := decodeJSON(r, &p); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	created, err := s.catalog.CreateProduct(r.Context(), &p)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondResult(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	var p models.Product
	if err := decodeJSON(r, &p); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	updated, err := s.catalog.UpdateProduct(r.Context(), &p)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondResult(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if err := s.catalog.DeleteProduct(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, "product deleted successfully")
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.catalog.ListCategories(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondResult(w, http.StatusOK, categories)
}

type categoryRequest struct {
	CategoryID  string `json:"category_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	category, err := s.catalog.CreateCategory(r.Context(), req.Name, req.Description)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondResult(w, http.StatusCreated, category)
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	category, err := s.catalog.UpdateCategory(r.Context(), req.CategoryID, req.Name, req.Description)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondResult(w, http.StatusOK, category)
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if err := s.catalog.DeleteCategory(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, "category deleted successfully")
}

func (s *Server) handleListBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := s.catalog.ListBrands(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondResult(w, http.StatusOK, brands)
}

type brandRequest struct {
	BrandID string `json:"brand_id"`
	Name    string `json:"name"`
}

func (s *Server) handleCreateBrand(w http.ResponseWriter, r *http.Request) {
	var req brandRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	brand, err := s.catalog.CreateBrand(r.Context(), req.Name)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondResult(w, http.StatusCreated, brand)
}

func (s *Server) handleUpdateBrand(w http.ResponseWriter, r *http.Request) {
	var req brandRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	brand, err := s.catalog.UpdateBrand(r.Context(), req.BrandID, req.Name)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondResult(w, http.StatusOK, brand)
}

func (s *Server) handleDeleteBrand(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if err := s.catalog.DeleteBrand(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, "brand deleted successfully")
}
