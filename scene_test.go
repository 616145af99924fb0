package spincube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScene_AddKeepsInsertionOrder(t *testing.T) {
	scene := NewScene()
	assert.True(t, scene.Add(3))
	assert.True(t, scene.Add(1))
	assert.True(t, scene.Add(2))
	assert.False(t, scene.Add(1), "adding a member twice is a no-op")

	assert.Equal(t, []EntityId{3, 1, 2}, scene.Members())
	assert.Equal(t, 3, scene.Len())
	assert.True(t, scene.Contains(2))
	assert.False(t, scene.Contains(4))
}

func TestScene_MembersIsACopy(t *testing.T) {
	scene := NewScene()
	scene.Add(1)
	members := scene.Members()
	members[0] = 99
	assert.Equal(t, []EntityId{1}, scene.Members())
}

func TestScene_UseCamera(t *testing.T) {
	scene := NewScene()
	_, ok := scene.Camera()
	assert.False(t, ok)

	assert.ErrorIs(t, scene.UseCamera(5), ErrNotInScene)

	scene.Add(5)
	require.NoError(t, scene.UseCamera(5))
	cam, ok := scene.Camera()
	assert.True(t, ok)
	assert.Equal(t, EntityId(5), cam)
}
