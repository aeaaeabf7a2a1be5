package domain

import "strings"

// SortField is a column the articles collection can be ordered by.
type SortField int

const (
	SortByCreatedAt SortField = iota
	SortByArticleID
	SortByTitle
	SortByTopic
	SortByAuthor
	SortByBody
	SortByVotes
	SortByArticleImgURL
	SortByCommentCount
)

var sortFieldNames = map[string]SortField{
	"article_id":      SortByArticleID,
	"title":           SortByTitle,
	"topic":           SortByTopic,
	"author":          SortByAuthor,
	"body":            SortByBody,
	"created_at":      SortByCreatedAt,
	"votes":           SortByVotes,
	"article_img_url": SortByArticleImgURL,
	"comment_count":   SortByCommentCount,
}

// ParseSortField resolves a sort_by value. Matching is exact.
func ParseSortField(s string) (SortField, bool) {
	f, ok := sortFieldNames[s]
	return f, ok
}

func (f SortField) String() string {
	for name, v := range sortFieldNames {
		if v == f {
			return name
		}
	}
	return "unknown"
}

type SortOrder int

const (
	OrderDesc SortOrder = iota
	OrderAsc
)

// ParseSortOrder accepts "asc" or "desc" in any letter case.
func ParseSortOrder(s string) (SortOrder, bool) {
	switch strings.ToLower(s) {
	case "asc":
		return OrderAsc, true
	case "desc":
		return OrderDesc, true
	default:
		return OrderDesc, false
	}
}

func (o SortOrder) String() string {
	if o == OrderAsc {
		return "asc"
	}
	return "desc"
}

// ArticleFilter holds validated parameters for listing articles.
// The zero value lists every article newest first.
type ArticleFilter struct {
	SortBy SortField
	Order  SortOrder
	Topic  string
}
