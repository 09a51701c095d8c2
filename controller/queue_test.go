package controller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamgen/cli/entity"
	teamerrors "github.com/teamgen/cli/errors"
)

func TestFindQueue(t *testing.T) {
	f := newFakeTFS(t)
	f.queues = []*entity.AgentQueue{{ID: 3, Name: "Hosted"}, {ID: 4, Name: "Default"}}
	c := f.controller()
	project := &entity.TeamProject{ID: "1", Name: "Demo"}

	queue, err := c.FindQueue(context.Background(), f.account(), project, "Default")
	require.NoError(t, err)
	assert.Equal(t, 4, queue.ID)
}

func TestFindQueueEmptyListIsNotFound(t *testing.T) {
	f := newFakeTFS(t)
	c := f.controller()
	project := &entity.TeamProject{ID: "1", Name: "Demo"}

	_, err := c.FindQueue(context.Background(), f.account(), project, "Default")
	assert.True(t, teamerrors.IsNotFound(err))

	queue, found, err := c.TryFindQueue(context.Background(), f.account(), project, "Default")
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, queue)
}

func TestGetPools(t *testing.T) {
	f := newFakeTFS(t)
	f.pools = []*entity.AgentPool{{ID: 1, Name: "Default", Size: 2}, {ID: 2, Name: "Hosted"}}
	c := f.controller()

	pools, err := c.GetPools(context.Background(), f.account())
	require.NoError(t, err)
	require.Len(t, pools, 2)
	assert.Equal(t, "Hosted", pools[1].Name)
}
