package session

import (
	"context"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/popdriving/sessionbook/internal/common/clock"
	"github.com/popdriving/sessionbook/internal/common/identity"
	"github.com/popdriving/sessionbook/internal/models"
	sessionRepo "github.com/popdriving/sessionbook/internal/repositories/session"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// TestConcurrentSignupsBothPersist exercises the whole load-mutate-save
// cycle against a real store. Without the service-level serialization,
// concurrent signups could load the same snapshot and the losing save
// would silently drop the other user's signup.
func TestConcurrentSignupsBothPersist(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	repo, err := sessionRepo.NewRedis(&sessionRepo.RedisConfig{
		RedisClient: client,
	})
	require.NoError(t, err)

	svc, err := New(&Config{
		Repo:  repo,
		IDGen: identity.New(clock.New()),
	})
	require.NoError(t, err)

	ctx := context.Background()
	booked, err := svc.BookSession(ctx, &BookSessionInput{
		HostID:    "host-id",
		ChannelID: "test-channel",
		Time:      "2025-10-07T18:30",
		Duration:  "1 hour",
	})
	require.NoError(t, err)

	const signups = 16

	var wg sync.WaitGroup
	errs := make([]error, signups)
	for i := 0; i < signups; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, errs[n] = svc.Signup(ctx, &SignupInput{
				SessionID: booked.Session.ID,
				UserID:    string(rune('a' + n)),
				UserTag:   "Driver",
				Role:      models.RoleDriver,
			})
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	got, err := svc.GetSession(ctx, &GetSessionInput{SessionID: booked.Session.ID})
	require.NoError(t, err)
	require.Len(t, got.Session.Drivers, signups)
}
