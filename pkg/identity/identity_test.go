package identity

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity_WithRemoteIP(t *testing.T) {
	id := &Identity{
		UserID: 7,
		Email:  "alice@example.com",
	}

	ip := net.ParseIP("192.168.1.100")
	id.WithRemoteIP(ip)

	assert.Equal(t, ip, id.RemoteIP)
}

func TestContextGetSet(t *testing.T) {
	ctx := context.Background()

	// Initially no identity
	id, ok := Get(ctx)
	assert.False(t, ok)
	assert.Nil(t, id)

	// Set identity
	expected := &Identity{
		UserID:   7,
		Email:    "alice@example.com",
		FullName: "Alice Doe",
	}
	ctx = Set(ctx, expected)

	// Get identity
	id, ok = Get(ctx)
	assert.True(t, ok)
	require.NotNil(t, id)
	assert.Equal(t, expected.UserID, id.UserID)
	assert.Equal(t, expected.Email, id.Email)
	assert.Equal(t, expected.FullName, id.FullName)
}
