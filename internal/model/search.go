package model

import (
	"fmt"
	"strings"
)

type SearchType string

const (
	SearchSentence  SearchType = "sentence"
	SearchTitle     SearchType = "title"
	SearchAuthor    SearchType = "author"
	SearchPublisher SearchType = "publisher"
	SearchISBN      SearchType = "isbn"
)

var SearchTypes = []SearchType{SearchSentence, SearchTitle, SearchAuthor, SearchPublisher, SearchISBN}

type BookSort string

const (
	BookSortCreatedAt BookSort = "createdAt"
	BookSortTitle     BookSort = "title"
	BookSortAuthor    BookSort = "author"
)

type SentenceSort string

const (
	SentenceSortPage      SentenceSort = "page"
	SentenceSortCreatedAt SentenceSort = "createdAt"
)

func ParseSearchType(s string) (SearchType, error) {
	for _, t := range SearchTypes {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return "", &ValidationError{Field: "type", Message: fmt.Sprintf("unknown search type %q", s)}
}

func ParseBookSort(s string) (BookSort, error) {
	for _, v := range []BookSort{BookSortCreatedAt, BookSortTitle, BookSortAuthor} {
		if strings.EqualFold(s, string(v)) {
			return v, nil
		}
	}
	return "", &ValidationError{Field: "sort", Message: fmt.Sprintf("unknown book sort %q", s)}
}

func ParseSentenceSort(s string) (SentenceSort, error) {
	for _, v := range []SentenceSort{SentenceSortPage, SentenceSortCreatedAt} {
		if strings.EqualFold(s, string(v)) {
			return v, nil
		}
	}
	return "", &ValidationError{Field: "sort", Message: fmt.Sprintf("unknown sentence sort %q", s)}
}
