package info_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lemraya/lemraya-api/internal/info"
	"github.com/lemraya/lemraya-api/internal/platform/apperr"
)

type mockRepo struct {
	mappings   []info.LetterMapping
	mappingErr error

	subRows   []info.LetterMapping
	subRowErr error

	headers   []info.HeaderRow
	headerErr error

	methods   []info.VowelMethod
	methodErr error

	calls []string
}

func (m *mockRepo) ListLetterMap(_ context.Context) ([]info.LetterMapping, error) {
	m.calls = append(m.calls, "letter_map")
	return m.mappings, m.mappingErr
}

func (m *mockRepo) ListLetterMapSubRows(_ context.Context) ([]info.LetterMapping, error) {
	m.calls = append(m.calls, "sub_rows")
	return m.subRows, m.subRowErr
}

func (m *mockRepo) ListHeaders(_ context.Context) ([]info.HeaderRow, error) {
	m.calls = append(m.calls, "headers")
	return m.headers, m.headerErr
}

func (m *mockRepo) ListVowelMethods(_ context.Context) ([]info.VowelMethod, error) {
	return m.methods, m.methodErr
}

func ptr(s string) *string { return &s }

func newService(repo *mockRepo) *info.Service {
	return info.NewService(repo, slog.Default())
}

func TestLetterMap_MergesThreeTables(t *testing.T) {
	repo := &mockRepo{
		mappings: []info.LetterMapping{{ArabLetter: ptr("ا")}, {ArabLetter: ptr("ب")}},
		subRows:  []info.LetterMapping{{ArabLetter: ptr("ة")}},
		headers:  []info.HeaderRow{{SubTitle: ptr("העיצורים")}, {SubTitle: nil}, {SubTitle: ptr("התנועות")}},
	}
	service := newService(repo)

	payload, err := service.LetterMap(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"העיצורים", "התנועות"}, payload.Headers)
	assert.Len(t, payload.ArabicLetterMap, 2)
	assert.Len(t, payload.ArabicLetterMapSubRows, 1)
}

func TestLetterMap_EmptyTablesStaySlices(t *testing.T) {
	service := newService(&mockRepo{})

	payload, err := service.LetterMap(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, payload.Headers)
	assert.NotNil(t, payload.ArabicLetterMap)
	assert.NotNil(t, payload.ArabicLetterMapSubRows)
}

func TestLetterMap_FailsFastNamingTheSubQuery(t *testing.T) {
	tests := []struct {
		name        string
		repo        *mockRepo
		wantCalls   []string
		wantMessage string
	}{
		{
			name:        "main table",
			repo:        &mockRepo{mappingErr: errors.New("boom")},
			wantCalls:   []string{"letter_map"},
			wantMessage: "Error fetching arabic letter map",
		},
		{
			name:        "sub rows",
			repo:        &mockRepo{subRowErr: errors.New("boom")},
			wantCalls:   []string{"letter_map", "sub_rows"},
			wantMessage: "Error fetching arabic letter map sub rows",
		},
		{
			name:        "headers",
			repo:        &mockRepo{headerErr: errors.New("boom")},
			wantCalls:   []string{"letter_map", "sub_rows", "headers"},
			wantMessage: "Error fetching table headers",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			service := newService(tc.repo)

			_, err := service.LetterMap(context.Background())
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "INTERNAL_ERROR", ae.Code)
			assert.Equal(t, tc.wantMessage, ae.Message)
			assert.Equal(t, tc.wantCalls, tc.repo.calls, "later sub-queries must not run after a failure")
		})
	}
}

func TestVowelMethods_EmptyTableIsNotFound(t *testing.T) {
	service := newService(&mockRepo{})

	_, err := service.VowelMethods(context.Background())
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
}

func TestVowelMethods_ReturnsRowsInOrder(t *testing.T) {
	repo := &mockRepo{
		methods: []info.VowelMethod{
			{ID: 1, Name: ptr("fatha")},
			{ID: 2, Name: ptr("kasra")},
		},
	}
	service := newService(repo)

	methods, err := service.VowelMethods(context.Background())
	require.NoError(t, err)
	require.Len(t, methods, 2)
	assert.Equal(t, int64(1), methods[0].ID)
	assert.Equal(t, int64(2), methods[1].ID)
}
