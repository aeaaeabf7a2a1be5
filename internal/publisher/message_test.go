package publisher

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news_api/internal/domain"
)

func TestNewEventMessage_WithPayload(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))
	comment := &domain.Comment{CommentID: 19, ArticleID: 1, Body: "x", Author: "rogersop"}

	msg, err := newEventMessage(domain.Event{
		Action:    domain.ActionCommentCreated,
		ArticleID: 1,
		CommentID: 19,
		Payload:   comment,
	}, now)
	require.NoError(t, err)

	assert.Equal(t, domain.ActionCommentCreated, msg.Action)
	assert.Equal(t, time.UTC, msg.Timestamp.Location())

	var decoded domain.Comment
	require.NoError(t, json.Unmarshal(msg.Payload, &decoded))
	assert.Equal(t, "rogersop", decoded.Author)
}

func TestNewEventMessage_WithoutPayload(t *testing.T) {
	msg, err := newEventMessage(domain.Event{Action: domain.ActionCommentDeleted, CommentID: 3}, time.Now())
	require.NoError(t, err)

	body, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "payload")
	assert.NotContains(t, string(body), "article_id")
	assert.Contains(t, string(body), `"comment_id":3`)
}

func TestNewEventMessage_UnmarshalablePayload(t *testing.T) {
	_, err := newEventMessage(domain.Event{Action: domain.ActionArticleVoted, Payload: make(chan int)}, time.Now())
	assert.Error(t, err)
}
