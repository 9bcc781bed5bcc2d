package book

import "strings"

// isValidISBN: 10 или 13 цифр, без разделителей.
func isValidISBN(isbn string) bool {
	if len(isbn) != 10 && len(isbn) != 13 {
		return false
	}
	for _, r := range isbn {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isValidTitle(title string) bool {
	return strings.TrimSpace(title) != ""
}

func isValidAuthor(author string) bool {
	return strings.TrimSpace(author) != ""
}

// цена опциональна, но отрицательной быть не может
func isValidPrice(price *float64) bool {
	return price == nil || *price >= 0
}
