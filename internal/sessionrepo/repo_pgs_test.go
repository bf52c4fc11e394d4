//go:build integration

package sessionrepo_test

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/taka-track/internal/domain"
	"github.com/go-petr/taka-track/internal/sessionrepo"
	"github.com/go-petr/taka-track/internal/test"
	"github.com/go-petr/taka-track/pkg/configpkg"
	"github.com/go-petr/taka-track/pkg/dbpkg"
	"github.com/go-petr/taka-track/pkg/randompkg"
)

var (
	dbDriver string
	dbSource string
)

func TestMain(m *testing.M) {
	config, err := configpkg.Load("../../configs")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	dbDriver = config.DBDriver
	dbSource = config.DBSource

	os.Exit(m.Run())
}

func TestCreate(t *testing.T) {
	t.Parallel()

	tx := dbpkg.SetupTX(t, dbDriver, dbSource)
	user := test.SeedUser(t, tx)
	sessionRepo := sessionrepo.NewRepoPGS(tx)

	arg := domain.CreateSessionParams{
		ID:           uuid.New(),
		Username:     user.Username,
		RefreshToken: randompkg.String(32),
		UserAgent:    "test-agent",
		ClientIP:     "127.0.0.1",
		ExpiresAt:    time.Now().UTC().Add(time.Hour).Truncate(time.Second),
	}

	sess, err := sessionRepo.Create(context.Background(), arg)
	require.NoError(t, err)

	require.Equal(t, arg.ID, sess.ID)
	require.Equal(t, arg.Username, sess.Username)
	require.Equal(t, arg.RefreshToken, sess.RefreshToken)
	require.False(t, sess.IsBlocked)
	require.WithinDuration(t, arg.ExpiresAt, sess.ExpiresAt, time.Second)
	require.NotZero(t, sess.CreatedAt)
}

func TestCreateUnknownUser(t *testing.T) {
	t.Parallel()

	tx := dbpkg.SetupTX(t, dbDriver, dbSource)
	sessionRepo := sessionrepo.NewRepoPGS(tx)

	_, err := sessionRepo.Create(context.Background(), domain.CreateSessionParams{
		ID:           uuid.New(),
		Username:     "no-such-user",
		RefreshToken: randompkg.String(32),
		ExpiresAt:    time.Now().UTC().Add(time.Hour),
	})
	require.EqualError(t, err, domain.ErrUserNotFound.Error())
}

func TestGet(t *testing.T) {
	t.Parallel()

	tx := dbpkg.SetupTX(t, dbDriver, dbSource)
	user := test.SeedUser(t, tx)
	sessionRepo := sessionrepo.NewRepoPGS(tx)

	arg := domain.CreateSessionParams{
		ID:           uuid.New(),
		Username:     user.Username,
		RefreshToken: randompkg.String(32),
		ExpiresAt:    time.Now().UTC().Add(time.Hour),
	}

	sess, err := sessionRepo.Create(context.Background(), arg)
	require.NoError(t, err)

	got, err := sessionRepo.Get(context.Background(), sess.ID)
	require.NoError(t, err)
	require.Equal(t, sess.ID, got.ID)
	require.Equal(t, sess.Username, got.Username)
	require.Equal(t, sess.RefreshToken, got.RefreshToken)

	_, err = sessionRepo.Get(context.Background(), uuid.New())
	require.EqualError(t, err, domain.ErrSessionNotFound.Error())
}