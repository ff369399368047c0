package valueobjects

import (
	"strings"
	"unicode/utf8"
)

const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 200
)

// Title is a trimmed, non-empty ticket title of at most MaxTitleLength characters.
type Title struct {
	value string
}

func NewTitle(s string) (Title, error) {
	v, err := validateText(s, MaxTitleLength, ErrEmptyTitle, ErrTooLongTitle)
	if err != nil {
		return Title{}, err
	}
	return Title{value: v}, nil
}

func (t Title) String() string {
	return t.value
}

// Description is a trimmed, non-empty ticket description of at most
// MaxDescriptionLength characters.
type Description struct {
	value string
}

func NewDescription(s string) (Description, error) {
	v, err := validateText(s, MaxDescriptionLength, ErrEmptyDescription, ErrTooLongDescription)
	if err != nil {
		return Description{}, err
	}
	return Description{value: v}, nil
}

func (d Description) String() string {
	return d.value
}

// validateText trims s and checks its length in runes, not bytes.
func validateText(s string, max int, errEmpty, errTooLong error) (string, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return "", errEmpty
	}
	if utf8.RuneCountInString(v) > max {
		return "", errTooLong
	}
	return v, nil
}
