package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harentsoaR/dental-care-api/internal/config"
	"github.com/harentsoaR/dental-care-api/internal/repository/memory"
	"github.com/harentsoaR/dental-care-api/internal/utils"
)

func setMemoryEnv(t *testing.T) {
	t.Setenv("JWT_TOKEN", "cli-secret")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("MONGO_URI", "")
}

func TestTokenCommand(t *testing.T) {
	setMemoryEnv(t)

	cmd := tokenCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"admin@dental.care", "--name", "Admin"})
	require.NoError(t, cmd.Execute())

	claims, err := utils.NewTokenService("cli-secret").Verify(strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Equal(t, "admin@dental.care", claims.Email)
	assert.Equal(t, "Admin", claims.Name)
}

func TestPromoteCommand(t *testing.T) {
	setMemoryEnv(t)

	cmd := promoteCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"root@dental.care"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "root@dental.care is admin")
}

func TestOpenStoreMemory(t *testing.T) {
	repos, closeStore, err := openStore(context.Background(), &config.Config{StoreDriver: config.DriverMemory})
	require.NoError(t, err)
	require.NotNil(t, repos.Users)
	assert.NoError(t, repos.Ping(context.Background()))
	assert.NoError(t, closeStore(context.Background()))
}

func TestSeedAdmin(t *testing.T) {
	repos := memory.NewStore().Repositories()
	ctx := context.Background()

	require.NoError(t, seedAdmin(ctx, repos.Users, ""))
	all, err := repos.Users.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	require.NoError(t, seedAdmin(ctx, repos.Users, "root@dental.care"))
	user, err := repos.Users.FindByEmail(ctx, "root@dental.care")
	require.NoError(t, err)
	assert.True(t, user.IsAdmin())
}
