package redisclient

import (
	"context"
	"testing"
	"time"

	"content-studio/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndCheck(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := New(config.RedisConfig{Addr: mr.Addr(), DB: 0})
	defer rdb.Close()

	assert.Equal(t, ClientName, rdb.Options().ClientName)
	res, err := Check(context.Background(), rdb, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "PONG", res)

	addr := mr.Addr()
	mr.Close()
	_, err = Check(context.Background(), rdb, time.Second)
	assert.ErrorContains(t, err, addr)
}
