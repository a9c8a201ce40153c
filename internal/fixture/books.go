// Package fixture holds the sample catalog used by tests and local seeding.
package fixture

import "bookcatalog/internal/model"

// Books returns a fresh copy of the five-book sample catalog.
// Two books have a null author. Four are in stock (count > 1); Dyadya Stiopa has a single copy.
func Books() []*model.Book {
	return []*model.Book{
		{Name: "Hobbit", Author: str("Tolkien"), Count: 5, Genre: []string{"fantasy"}, PublishingYear: year(2014)},
		{Name: "Lord of the rings", Author: str("Tolkien"), Count: 3, Genre: []string{"fantasy"}, PublishingYear: year(2015)},
		{Name: "Kolobok", Count: 10, Genre: []string{"kids"}, PublishingYear: year(2000)},
		{Name: "Repka", Count: 11, Genre: []string{"kids"}, PublishingYear: year(2000)},
		{Name: "Dyadya Stiopa", Author: str("Mihalkov"), Count: 1, Genre: []string{"kids"}, PublishingYear: year(2001)},
	}
}

// Book returns a fresh single book that is not part of Books.
func Book() *model.Book {
	return &model.Book{
		Name:           "Hamlet",
		Author:         str("W. Shakespeare"),
		Count:          10,
		Genre:          []string{"Classics", "Tragedy"},
		PublishingYear: year(2004),
	}
}

func str(s string) *string { return &s }
func year(y int) *int      { return &y }
