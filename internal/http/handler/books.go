package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"bookcatalog/internal/model"
	"bookcatalog/internal/repository"
	"bookcatalog/internal/service"
)

// bookRequest is the JSON body for creating a book. A missing genre means no genres.
type bookRequest struct {
	Name           string   `json:"name"`
	Author         *string  `json:"author"`
	Genre          []string `json:"genre"`
	Count          int      `json:"count"`
	PublishingYear *int     `json:"publishingYear"`
}

func (r bookRequest) toModel() (*model.Book, error) {
	return model.NewBook(r.Name, r.Author, r.Genre, r.Count, r.PublishingYear)
}

// AddBook godoc
// @Summary Add a book
// @Tags books
// @Accept json
// @Param book body bookRequest true "Book"
// @Success 201
// @Failure 400 {object} errorPayload
// @Router /books [post]
func AddBook(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req *bookRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid JSON body")
		}
		if req == nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ARGUMENT", "book is required")
		}
		book, err := req.toModel()
		if err != nil {
			return writeServiceError(c, err)
		}
		if err := svc.AddBook(c.UserContext(), book); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusCreated)
	}
}

// AddBooks godoc
// @Summary Add books in bulk
// @Tags books
// @Accept json
// @Param books body []bookRequest true "Books"
// @Success 201
// @Failure 400 {object} errorPayload
// @Router /books/bulk [post]
func AddBooks(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var reqs []*bookRequest
		if err := c.BodyParser(&reqs); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid JSON body")
		}
		if reqs == nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ARGUMENT", "books are required")
		}

		books := make([]*model.Book, 0, len(reqs))
		for i, r := range reqs {
			if r == nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_ARGUMENT", "book at index "+strconv.Itoa(i)+" is null")
			}
			b, err := r.toModel()
			if err != nil {
				return writeServiceError(c, err)
			}
			books = append(books, b)
		}

		if err := svc.AddBooks(c.UserContext(), books); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusCreated)
	}
}

// BooksInStock godoc
// @Summary Books with more than one copy
// @Tags books
// @Produce json
// @Param sortByTitle query bool false "Sort by title after limiting"
// @Param showOnlyTitle query bool false "Return titles only"
// @Param getOnlyCount query bool false "Return only the count"
// @Param limit query int false "Maximum number of matched books; 0 or absent means no limit"
// @Success 200 {object} repository.AggregateResponse[model.Book]
// @Failure 400 {object} errorPayload
// @Router /books/in-stock [get]
func BooksInStock(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var (
			params repository.BooksInStockQueryParams
			err    error
		)
		if params.SortByTitle, err = queryBool(c, "sortByTitle"); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_QUERY", "sortByTitle must be a boolean")
		}
		if params.ShowOnlyTitle, err = queryBool(c, "showOnlyTitle"); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_QUERY", "showOnlyTitle must be a boolean")
		}
		if params.GetOnlyCount, err = queryBool(c, "getOnlyCount"); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_QUERY", "getOnlyCount must be a boolean")
		}
		if s := c.Query("limit"); s != "" {
			if params.Limit, err = strconv.Atoi(s); err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
			}
		}

		res, err := svc.BooksInStock(c.UserContext(), params)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// BookWithLimitCount godoc
// @Summary Book with the smallest or largest count
// @Tags books
// @Produce json
// @Param which path string true "min or max"
// @Success 200 {object} model.Book
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /books/limit-count/{which} [get]
func BookWithLimitCount(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		book, err := svc.BookWithLimitCount(c.UserContext(), c.Params("which"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(book)
	}
}

// Authors godoc
// @Summary Distinct authors; null stands for books without an author
// @Tags books
// @Produce json
// @Success 200 {array} string
// @Router /books/authors [get]
func Authors(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authors, err := svc.Authors(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(authors)
	}
}

// BooksWithNoAuthor godoc
// @Summary Books whose author is null
// @Tags books
// @Produce json
// @Success 200 {array} model.Book
// @Router /books/no-author [get]
func BooksWithNoAuthor(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		books, err := svc.BooksWithNoAuthor(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(books)
	}
}

// IncrementBooksCount godoc
// @Summary Add one copy to every book
// @Tags books
// @Success 204
// @Router /books/increment-count [post]
func IncrementBooksCount(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.IncrementBooksCount(c.UserContext()); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// AddFavorityGenre godoc
// @Summary Tag fantasy books as favority
// @Tags books
// @Success 204
// @Router /books/favority [post]
func AddFavorityGenre(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.AddFavorityGenreToFantasyBooks(c.UserContext()); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// DeleteBooks godoc
// @Summary Delete books whose count is greater than a value
// @Tags books
// @Param countGreaterThan query int true "Count threshold"
// @Success 204
// @Failure 400 {object} errorPayload
// @Router /books [delete]
func DeleteBooks(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		v, err := strconv.Atoi(c.Query("countGreaterThan"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_COUNT", "countGreaterThan must be an integer")
		}
		if err := svc.DeleteBooksWithCountMoreThan(c.UserContext(), v); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// DeleteAllBooks godoc
// @Summary Delete every book
// @Tags books
// @Success 204
// @Router /books/all [delete]
func DeleteAllBooks(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.DeleteAllBooks(c.UserContext()); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func queryBool(c *fiber.Ctx, key string) (bool, error) {
	s := c.Query(key)
	if s == "" {
		return false, nil
	}
	return strconv.ParseBool(s)
}
