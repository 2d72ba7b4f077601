package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"caelio/internal/repositories"
	"caelio/pkg/utils"
)

const bookPreviewWords = 100

type BooksController struct {
	bookRepository repositories.BookRepositoryInterface
}

func NewBooksController(bookRepository repositories.BookRepositoryInterface) *BooksController {
	return &BooksController{
		bookRepository: bookRepository,
	}
}

// GetBook godoc
// @Summary Get one catalog book
// @Description Returns the book's details with a content preview truncated to 100 words
// @Tags Books
// @Produce json
// @Param id path string true "Product id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /books/{id} [get]
func (b *BooksController) GetBook(c *gin.Context) {
	catalog, err := b.bookRepository.LoadCatalog(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	id := c.Param("id")
	for _, book := range catalog {
		if book.ProductID != id {
			continue
		}
		utils.RespondSuccess(c, gin.H{
			"product_id":      book.ProductID,
			"title":           book.Title,
			"authors":         book.Authors,
			"category":        book.Category,
			"summary":         book.Summary,
			"content_preview": utils.TruncateWords(book.Content, bookPreviewWords),
			"manufacturer":    book.Manufacturer,
			"cover_link":      book.CoverLink,
			"current_price":   book.CurrentPrice,
			"avg_rating":      book.AvgRating,
			"review_count":    book.ReviewCount,
			"quantity":        book.Quantity,
			"pages":           book.Pages,
		}, "")
		return
	}

	utils.RespondError(c, http.StatusNotFound, "Book not found")
}
