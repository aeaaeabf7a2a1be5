package domain

import "time"

type Article struct {
	ArticleID     int64     `db:"article_id" json:"article_id"`
	Title         string    `db:"title" json:"title"`
	Topic         string    `db:"topic" json:"topic"`
	Author        string    `db:"author" json:"author"`
	Body          string    `db:"body" json:"body"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	Votes         int       `db:"votes" json:"votes"`
	ArticleImgURL string    `db:"article_img_url" json:"article_img_url"`
}

// ArticleDetail is a single article together with its derived comment count.
type ArticleDetail struct {
	Article
	CommentCount int `db:"comment_count" json:"comment_count"`
}

// ArticleSummary is one row of the articles collection. It never carries the body.
type ArticleSummary struct {
	ArticleID     int64     `db:"article_id" json:"article_id"`
	Title         string    `db:"title" json:"title"`
	Topic         string    `db:"topic" json:"topic"`
	Author        string    `db:"author" json:"author"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	Votes         int       `db:"votes" json:"votes"`
	ArticleImgURL string    `db:"article_img_url" json:"article_img_url"`
	CommentCount  int       `db:"comment_count" json:"comment_count"`
}
