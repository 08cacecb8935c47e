package context

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abarbosa/redator-server/internal/model"
)

func TestManager_SessionRoundTrip(t *testing.T) {
	m := NewManager()
	session := model.Session{UserID: uuid.New(), Username: "ana", Role: "writer"}

	ctx := m.SetSessionToContext(context.Background(), session)

	got, ok := m.GetSessionFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, session, got)
}

func TestManager_GetSessionFromContext_Missing(t *testing.T) {
	m := NewManager()

	_, ok := m.GetSessionFromContext(context.Background())
	assert.False(t, ok)
}
