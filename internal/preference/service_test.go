package preference_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lemraya/lemraya-api/internal/platform/apperr"
	"github.com/lemraya/lemraya-api/internal/platform/dberr"
	"github.com/lemraya/lemraya-api/internal/preference"
)

// fakeRepo is an in-memory store keyed by user id, mimicking the upsert
// semantics of the real table: absent users read as no-rows.
type fakeRepo struct {
	starred    map[string]string
	videoOrder map[string]string

	readErr  error
	writeErr error
	writes   int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		starred:    make(map[string]string),
		videoOrder: make(map[string]string),
	}
}

func (f *fakeRepo) GetStarred(_ context.Context, userID string) (string, error) {
	return f.get(f.starred, userID)
}

func (f *fakeRepo) ReplaceStarred(_ context.Context, userID string, itemsJSON string) error {
	return f.put(f.starred, userID, itemsJSON)
}

func (f *fakeRepo) GetVideoOrder(_ context.Context, userID string) (string, error) {
	return f.get(f.videoOrder, userID)
}

func (f *fakeRepo) ReplaceVideoOrder(_ context.Context, userID string, orderJSON string) error {
	return f.put(f.videoOrder, userID, orderJSON)
}

func (f *fakeRepo) get(column map[string]string, userID string) (string, error) {
	if f.readErr != nil {
		return "", f.readErr
	}
	payload, ok := column[userID]
	if !ok {
		return "", dberr.ErrNoRows
	}
	return payload, nil
}

func (f *fakeRepo) put(column map[string]string, userID, payload string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.writes++
	column[userID] = payload
	return nil
}

func newService(repo *fakeRepo) *preference.Service {
	return preference.NewService(repo, slog.Default())
}

func TestGetStarred_NoRowIsEmptySuccess(t *testing.T) {
	service := newService(newFakeRepo())

	starred := service.GetStarred(context.Background(), "user-1")

	assert.True(t, starred.Success)
	require.NotNil(t, starred.Items)
	assert.Empty(t, starred.Items)
}

func TestGetStarred_ReadErrorDegradesToEmptySuccess(t *testing.T) {
	repo := newFakeRepo()
	repo.readErr = errors.New("connection refused")
	service := newService(repo)

	starred := service.GetStarred(context.Background(), "user-1")

	assert.True(t, starred.Success)
	assert.Empty(t, starred.Items)
}

func TestGetVideoOrder_NoRowIsNullOrder(t *testing.T) {
	service := newService(newFakeRepo())

	order := service.GetVideoOrder(context.Background(), "user-1")

	assert.True(t, order.Success)
	assert.Nil(t, order.Order)
}

func TestReplaceStarred_NilItemsIsValidationError(t *testing.T) {
	repo := newFakeRepo()
	service := newService(repo)

	_, err := service.ReplaceStarred(context.Background(), "user-1", preference.ReplaceStarredRequest{})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	assert.Zero(t, repo.writes, "a rejected body must not reach the store")
}

func TestReplaceVideoOrder_NilOrderIsValidationError(t *testing.T) {
	repo := newFakeRepo()
	service := newService(repo)

	_, err := service.ReplaceVideoOrder(context.Background(), "user-1", preference.ReplaceVideoOrderRequest{})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	assert.Zero(t, repo.writes)
}

func TestReplaceVideoOrder_RoundTripsAndIsIdempotent(t *testing.T) {
	repo := newFakeRepo()
	service := newService(repo)
	req := preference.ReplaceVideoOrderRequest{Order: []int64{3, 1, 2}}

	for i := 0; i < 2; i++ {
		saved, err := service.ReplaceVideoOrder(context.Background(), "user-1", req)
		require.NoError(t, err)
		assert.True(t, saved.Success)
	}

	order := service.GetVideoOrder(context.Background(), "user-1")
	assert.Equal(t, []int64{3, 1, 2}, order.Order)
	assert.Equal(t, 2, repo.writes)
}

func TestReplaceStarred_EmptyArrayClearsTheList(t *testing.T) {
	repo := newFakeRepo()
	service := newService(repo)

	_, err := service.ReplaceStarred(context.Background(), "user-1", preference.ReplaceStarredRequest{
		Items: []json.RawMessage{json.RawMessage(`{"id":5}`)},
	})
	require.NoError(t, err)

	_, err = service.ReplaceStarred(context.Background(), "user-1", preference.ReplaceStarredRequest{
		Items: []json.RawMessage{},
	})
	require.NoError(t, err)

	starred := service.GetStarred(context.Background(), "user-1")
	assert.True(t, starred.Success)
	assert.Empty(t, starred.Items)
}

func TestReplaceStarred_WriteErrorPropagates(t *testing.T) {
	repo := newFakeRepo()
	repo.writeErr = apperr.Internal(assert.AnError)
	service := newService(repo)

	_, err := service.ReplaceStarred(context.Background(), "user-1", preference.ReplaceStarredRequest{
		Items: []json.RawMessage{},
	})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "INTERNAL_ERROR", ae.Code)
}

func TestPreferencesAreIndependentPerUser(t *testing.T) {
	repo := newFakeRepo()
	service := newService(repo)

	_, err := service.ReplaceVideoOrder(context.Background(), "user-1", preference.ReplaceVideoOrderRequest{
		Order: []int64{1},
	})
	require.NoError(t, err)

	other := service.GetVideoOrder(context.Background(), "user-2")
	assert.Nil(t, other.Order)
}
