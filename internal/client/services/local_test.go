package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoronkov/wellfinder/internal/client/repositories/credentials"
	"github.com/avoronkov/wellfinder/internal/client/repositories/sessions"
	"github.com/avoronkov/wellfinder/internal/common"
	"github.com/avoronkov/wellfinder/internal/models"
)

func newLocalService() *LocalAuthService {
	return NewLocalAuthService(
		credentials.NewInMemoryRepository(),
		sessions.NewInMemoryRepository(),
		0,
	)
}

func TestLocalSignUp_RoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newLocalService()

	created, err := svc.SignUp(ctx, "a@x.com", "pw", "Alice")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", created.Account.Email)
	assert.Equal(t, "Alice", created.Account.Name)
	assert.NotEmpty(t, created.AccessToken)

	session, err := svc.GetSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "a@x.com", session.Account.Email)
	assert.Equal(t, created.AccessToken, session.AccessToken)
}

func TestLocalSignUp_Duplicate(t *testing.T) {
	ctx := context.Background()
	svc := newLocalService()

	_, err := svc.SignUp(ctx, "a@x.com", "pw", "")
	require.NoError(t, err)

	session, err := svc.SignUp(ctx, "a@x.com", "other", "")
	assert.Nil(t, session)
	assert.ErrorIs(t, err, common.ErrDuplicateAccount)
}

func TestLocalSignIn_CredentialCheck(t *testing.T) {
	ctx := context.Background()
	svc := newLocalService()

	created, err := svc.SignUp(ctx, "a@x.com", "pw", "")
	require.NoError(t, err)

	_, err = svc.SignIn(ctx, "a@x.com", "wrong")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)

	session, err := svc.SignIn(ctx, "a@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, created.Account.ID, session.Account.ID)
	assert.NotEqual(t, created.AccessToken, session.AccessToken, "sign-in mints a fresh token")
}

func TestLocalSignIn_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	svc := newLocalService()

	_, err := svc.SignIn(ctx, "ghost@x.com", "pw")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLocalGetSession_Expiry(t *testing.T) {
	ctx := context.Background()
	svc := newLocalService()

	// mint a session that is already past its deadline
	orig := timeNow
	timeNow = func() time.Time { return time.Now().Add(-2 * DefaultSessionValidity) }
	_, err := svc.SignUp(ctx, "a@x.com", "pw", "")
	timeNow = orig
	require.NoError(t, err)

	session, err := svc.GetSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)

	// no resurrection
	session, err = svc.GetSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestLocalSignOut_Idempotent(t *testing.T) {
	ctx := context.Background()
	svc := newLocalService()

	require.NoError(t, svc.SignOut(ctx))

	_, err := svc.SignUp(ctx, "a@x.com", "pw", "")
	require.NoError(t, err)

	require.NoError(t, svc.SignOut(ctx))

	session, err := svc.GetSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)

	require.NoError(t, svc.SignOut(ctx))
}

func TestLocalNotificationOrdering(t *testing.T) {
	ctx := context.Background()
	svc := newLocalService()

	var order []string
	var got1, got2 *models.Session

	svc.Subscribe(func(s *models.Session) {
		order = append(order, "L1")
		got1 = s
	})
	svc.Subscribe(func(s *models.Session) {
		order = append(order, "L2")
		got2 = s
	})

	session, err := svc.SignUp(ctx, "a@x.com", "pw", "")
	require.NoError(t, err)

	assert.Equal(t, []string{"L1", "L2"}, order)
	assert.Same(t, session, got1)
	assert.Same(t, session, got2)

	order = nil
	require.NoError(t, svc.SignOut(ctx))
	assert.Equal(t, []string{"L1", "L2"}, order)
	assert.Nil(t, got1)
	assert.Nil(t, got2)
}

func TestLocalUnsubscribe(t *testing.T) {
	ctx := context.Background()
	svc := newLocalService()

	var calls1, calls2 int
	unsub1 := svc.Subscribe(func(*models.Session) { calls1++ })
	svc.Subscribe(func(*models.Session) { calls2++ })

	_, err := svc.SignUp(ctx, "a@x.com", "pw", "")
	require.NoError(t, err)
	assert.Equal(t, 1, calls1)
	assert.Equal(t, 1, calls2)

	unsub1()
	unsub1() // idempotent

	require.NoError(t, svc.SignOut(ctx))
	assert.Equal(t, 1, calls1)
	assert.Equal(t, 2, calls2)
}

func TestLocalUnsubscribeDuringNotify(t *testing.T) {
	ctx := context.Background()
	svc := newLocalService()

	var calls2 int
	var unsub2 func()

	svc.Subscribe(func(*models.Session) { unsub2() })
	unsub2 = svc.Subscribe(func(*models.Session) { calls2++ })

	_, err := svc.SignUp(ctx, "a@x.com", "pw", "")
	require.NoError(t, err)
	assert.Equal(t, 1, calls2, "removal mid-pass must not affect delivery in that pass")

	require.NoError(t, svc.SignOut(ctx))
	assert.Equal(t, 1, calls2, "removed listener is not called in later passes")
}

func TestLocalConcurrentSignUpRace(t *testing.T) {
	ctx := context.Background()
	svc := newLocalService()

	const workers = 16
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.SignUp(ctx, "a@x.com", "pw", "")
		}(i)
	}
	wg.Wait()

	var ok, dup int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, common.ErrDuplicateAccount):
			dup++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok, "exactly one sign-up wins")
	assert.Equal(t, workers-1, dup)
}

func TestLocalSimulatedLatency_ContextCancel(t *testing.T) {
	svc := NewLocalAuthService(
		credentials.NewInMemoryRepository(),
		sessions.NewInMemoryRepository(),
		time.Minute,
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.SignUp(ctx, "a@x.com", "pw", "")
	assert.ErrorIs(t, err, context.Canceled)
}
