package domain

import "time"

type Comment struct {
	CommentID int64     `db:"comment_id" json:"comment_id"`
	Body      string    `db:"body" json:"body"`
	ArticleID int64     `db:"article_id" json:"article_id"`
	Author    string    `db:"author" json:"author"`
	Votes     int       `db:"votes" json:"votes"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type NewComment struct {
	Body   string
	Author string
}
