package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moneymong/internal/domain/models"
)

func history() []models.Message {
	return []models.Message{
		{ID: "msg-1", Role: models.RoleUser, Content: "첫 질문"},
		{ID: "msg-2", Role: models.RoleAssistant, Content: "첫 답변"},
	}
}

func TestThreadAppendTentative(t *testing.T) {
	th := NewThread("conv-1", history())

	id := th.AppendTentative("새 질문")
	assert.True(t, IsTentative(id), "tentative ids are local-only")
	assert.False(t, IsTentative("msg-1"), "server ids are never tentative")

	msgs := th.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, id, msgs[2].ID)
	assert.Equal(t, models.RoleUser, msgs[2].Role)
	assert.Equal(t, "새 질문", msgs[2].Content)
}

func TestThreadConfirmReplacesTentative(t *testing.T) {
	th := NewThread("conv-1", history())
	id := th.AppendTentative("새 질문")

	confirmed := []models.Message{
		{ID: "msg-3", Role: models.RoleUser, Content: "새 질문"},
		{ID: "msg-4", Role: models.RoleAssistant, Content: "새 답변"},
	}
	th.Confirm(id, confirmed)

	msgs := th.Messages()
	require.Len(t, msgs, 4)
	assert.Equal(t, "msg-3", msgs[2].ID)
	assert.Equal(t, "msg-4", msgs[3].ID)
	for _, m := range msgs {
		assert.False(t, IsTentative(m.ID), "no tentative entries remain after confirm")
	}
}

func TestThreadRollbackRemovesExactlyTentative(t *testing.T) {
	th := NewThread("conv-1", history())
	id := th.AppendTentative("실패할 메시지")

	th.Rollback(id)

	msgs := th.Messages()
	require.Len(t, msgs, 2, "prior messages stay intact")
	assert.Equal(t, "msg-1", msgs[0].ID)
	assert.Equal(t, "msg-2", msgs[1].ID)

	// Rolling back an unknown id is a no-op.
	th.Rollback("tmp-unknown")
	assert.Len(t, th.Messages(), 2)
}

func TestThreadConversationID(t *testing.T) {
	th := NewThread("", nil)
	assert.Empty(t, th.ConversationID())

	th.SetConversationID("conv-9")
	assert.Equal(t, "conv-9", th.ConversationID())

	th.AppendTentative("x")
	msgs := th.Messages()
	assert.Equal(t, "conv-9", msgs[len(msgs)-1].ConversationID,
		"tentative entries carry the assigned conversation id")
}

func TestThreadMessagesIsACopy(t *testing.T) {
	th := NewThread("conv-1", history())
	msgs := th.Messages()
	msgs[0].Content = "mutated"

	assert.Equal(t, "첫 질문", th.Messages()[0].Content)
}
