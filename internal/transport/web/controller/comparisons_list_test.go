package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jbeshir/set-ranker/internal/datasources/mocks"
	"github.com/jbeshir/set-ranker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testComparisons() []domain.ComparisonRecord {
	at := time.Date(2024, 6, 1, 21, 0, 0, 0, time.UTC)
	return []domain.ComparisonRecord{
		{ID: "cmp-2", UserID: testUserID, WinnerItemID: itemID(2), LoserItemID: itemID(3), CreatedAt: at.Add(time.Minute)},
		{ID: "cmp-1", UserID: testUserID, WinnerItemID: itemID(1), LoserItemID: itemID(2), CreatedAt: at},
	}
}

func TestComparisonsList_ServeHTTP(t *testing.T) {
	cases := []struct {
		name         string
		query        string
		wantPage     int
		wantPageSize int
		listErr      error
		wantStatus   int
	}{
		{name: "defaults", wantPage: 1, wantPageSize: defaultPageSize, wantStatus: http.StatusOK},
		{name: "paged", query: "?page=2&page_size=10", wantPage: 2, wantPageSize: 10, wantStatus: http.StatusOK},
		{name: "bad_page", query: "?page=0", wantStatus: http.StatusBadRequest},
		{name: "store_error", wantPage: 1, wantPageSize: defaultPageSize, listErr: errors.New("db down"), wantStatus: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lister := mocks.NewMockComparisonLister(t)
			if tc.wantPage != 0 {
				lister.EXPECT().
					ListComparisons(mock.Anything, testUserID, tc.wantPage, tc.wantPageSize).
					Return(testComparisons(), tc.listErr)
			}

			ctrl := ComparisonsList{Lister: lister}

			req := httptest.NewRequest(http.MethodGet, "/v1/comparisons"+tc.query, nil)
			req = testContextWithUserID(testUserID)(req)
			rec := httptest.NewRecorder()

			ctrl.ServeHTTP(rec, req)

			require.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus != http.StatusOK {
				return
			}

			var got ComparisonsListResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			assert.Len(t, got.Data, 2)
			assert.Equal(t, "cmp-2", got.Data[0].ID)
			assert.Equal(t, tc.wantPage, got.Metadata.Page)
			assert.Equal(t, tc.wantPageSize, got.Metadata.PageSize)
		})
	}
}
