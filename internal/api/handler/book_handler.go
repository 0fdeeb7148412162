package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/bookstore/internal/api/dto"
	"github.com/RoyceAzure/lab/bookstore/internal/constants"
	"github.com/RoyceAzure/lab/bookstore/internal/domain/model"
	"github.com/RoyceAzure/lab/bookstore/internal/service"
	"github.com/RoyceAzure/lab/bookstore/pkg/api"
	"github.com/go-chi/chi/v5"
)

type BookHandler struct {
	bookService service.IBookService
}

func NewBookHandler(bookService service.IBookService) *BookHandler {
	if bookService == nil {
		panic("bookService cannot be nil")
	}
	return &BookHandler{
		bookService: bookService,
	}
}

// GET /books
// 帶 page 參數走分頁，否則回全部
func (h *BookHandler) GetBooks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.URL.Query().Get("page") == "" {
		books, err := h.bookService.GetAllBooks(ctx)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		api.SuccessJSON(w, books)
		return
	}

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = constants.DefaultPaging
	}
	pageSize, err := strconv.Atoi(r.URL.Query().Get("page_size"))
	if err != nil || pageSize < 1 {
		pageSize = constants.DefaultPagingSize
	}

	books, total, err := h.bookService.GetBooksPaginated(ctx, page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, map[string]any{
		"books":     books,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// GET /books/{id}
func (h *BookHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	book, err := h.bookService.GetBook(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	api.SuccessJSON(w, book)
}

// POST /books
func (h *BookHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	var createDTO dto.CreateBookDTO
	if err := json.NewDecoder(r.Body).Decode(&createDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	book, err := h.bookService.CreateBook(r.Context(), &model.Book{
		Title:       createDTO.Title,
		Author:      createDTO.Author,
		Price:       createDTO.Price,
		Description: createDTO.Description,
		Category:    createDTO.Category,
		Stock:       createDTO.Stock,
		Image:       createDTO.Image,
		ISBN:        createDTO.ISBN,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.CreatedJSON(w, book)
}

// PUT /books/{id}
func (h *BookHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	var updateDTO dto.UpdateBookDTO
	if err := json.NewDecoder(r.Body).Decode(&updateDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	book, err := h.bookService.UpdateBook(r.Context(), chi.URLParam(r, "id"), &model.Book{
		Title:       updateDTO.Title,
		Author:      updateDTO.Author,
		Price:       updateDTO.Price,
		Description: updateDTO.Description,
		Category:    updateDTO.Category,
		Stock:       updateDTO.Stock,
		Image:       updateDTO.Image,
		ISBN:        updateDTO.ISBN,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, book)
}

// DELETE /books/{id}
func (h *BookHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	if err := h.bookService.DeleteBook(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	api.MessageJSON(w, "book removed")
}
