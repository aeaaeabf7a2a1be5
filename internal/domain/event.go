package domain

type EventAction string

const (
	ActionCommentCreated EventAction = "comment.created"
	ActionCommentDeleted EventAction = "comment.deleted"
	ActionArticleVoted   EventAction = "article.voted"
)

// Event describes a committed mutation.
type Event struct {
	Action    EventAction
	ArticleID int64
	CommentID int64
	Payload   any
}
