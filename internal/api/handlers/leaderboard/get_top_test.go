package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artprize/internal/core/leaderboard"
)

// mockLeaderboardService implements leaderboard.Service for testing
type mockLeaderboardService struct {
	getTopFunc func(ctx context.Context, n int) ([]leaderboard.Entry, error)
	lastN      int
}

func (m *mockLeaderboardService) GetTop(ctx context.Context, n int) ([]leaderboard.Entry, error) {
	m.lastN = n
	if m.getTopFunc != nil {
		return m.getTopFunc(ctx, n)
	}
	return nil, nil
}

func getTop(handler *GetTopHandler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	handler.HandleGetTop(w, req)
	return w
}

func TestHandleGetTop_DefaultLimit(t *testing.T) {
	service := &mockLeaderboardService{}
	handler := NewGetTopHandler(service)

	w := getTop(handler, "/artworks/top")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 10, service.lastN)
}

func TestHandleGetTop_ExplicitLimit(t *testing.T) {
	service := &mockLeaderboardService{}
	handler := NewGetTopHandler(service)

	w := getTop(handler, "/artworks/top?n=5")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, service.lastN)
}

func TestHandleGetTop_Entries(t *testing.T) {
	service := &mockLeaderboardService{
		getTopFunc: func(ctx context.Context, n int) ([]leaderboard.Entry, error) {
			return []leaderboard.Entry{
				{ContractAddress: "KT1X", TokenID: 0, VoteCount: 3, Name: "Sunrise"},
				{ContractAddress: "KT1Y", TokenID: 3, VoteCount: 1, Name: "Dusk"},
			}, nil
		},
	}
	handler := NewGetTopHandler(service)

	w := getTop(handler, "/artworks/top?n=10")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                `json:"success"`
		Data    []leaderboard.Entry `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, int64(3), resp.Data[0].VoteCount)
}

// An empty leaderboard serializes as an empty array, not null.
func TestHandleGetTop_EmptyIsArray(t *testing.T) {
	handler := NewGetTopHandler(&mockLeaderboardService{})

	w := getTop(handler, "/artworks/top")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestHandleGetTop_BadN(t *testing.T) {
	for _, target := range []string{"/artworks/top?n=abc", "/artworks/top?n=1.5"} {
		service := &mockLeaderboardService{}
		handler := NewGetTopHandler(service)

		w := getTop(handler, target)

		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.Equal(t, 0, service.lastN, "service must not be called")
	}
}

func TestHandleGetTop_InvalidLimitFromService(t *testing.T) {
	service := &mockLeaderboardService{
		getTopFunc: func(ctx context.Context, n int) ([]leaderboard.Entry, error) {
			return nil, leaderboard.ErrInvalidLimit
		},
	}
	handler := NewGetTopHandler(service)

	w := getTop(handler, "/artworks/top?n=0")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleGetTop_StoreFailure(t *testing.T) {
	service := &mockLeaderboardService{
		getTopFunc: func(ctx context.Context, n int) ([]leaderboard.Entry, error) {
			return nil, errors.New("connection reset")
		},
	}
	handler := NewGetTopHandler(service)

	w := getTop(handler, "/artworks/top")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection reset", "internal details must not leak")
}
