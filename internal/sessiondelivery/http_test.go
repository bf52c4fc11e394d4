package sessiondelivery

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"

	"github.com/go-petr/taka-track/internal/domain"
	"github.com/go-petr/taka-track/pkg/errorspkg"
	"github.com/go-petr/taka-track/pkg/randompkg"
	"github.com/go-petr/taka-track/pkg/tokenpkg"
	"github.com/go-petr/taka-track/pkg/web"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestRenewAccessToken(t *testing.T) {
	refreshToken := randompkg.String(48)
	accessToken := randompkg.String(48)
	accessTokenExpiresAt := time.Now().Add(time.Minute).Truncate(time.Second).UTC()

	testCases := []struct {
		name           string
		refreshToken   string
		buildStubs     func(sessionService *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name:         "OK",
			refreshToken: refreshToken,
			buildStubs: func(sessionService *MockService) {
				sessionService.EXPECT().
					RenewAccessToken(gomock.Any(), gomock.Eq(refreshToken)).
					Times(1).
					Return(accessToken, accessTokenExpiresAt, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:         "MissingRefreshToken",
			refreshToken: "",
			buildStubs: func(sessionService *MockService) {
				sessionService.EXPECT().
					RenewAccessToken(gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:         "ErrExpiredToken",
			refreshToken: refreshToken,
			buildStubs: func(sessionService *MockService) {
				sessionService.EXPECT().
					RenewAccessToken(gomock.Any(), gomock.Eq(refreshToken)).
					Times(1).
					Return("", time.Time{}, tokenpkg.ErrExpiredToken)
			},
			wantStatusCode: http.StatusUnauthorized,
			wantError:      tokenpkg.ErrExpiredToken.Error(),
		},
		{
			name:         "ErrBlockedSession",
			refreshToken: refreshToken,
			buildStubs: func(sessionService *MockService) {
				sessionService.EXPECT().
					RenewAccessToken(gomock.Any(), gomock.Eq(refreshToken)).
					Times(1).
					Return("", time.Time{}, domain.ErrBlockedSession)
			},
			wantStatusCode: http.StatusUnauthorized,
			wantError:      domain.ErrBlockedSession.Error(),
		},
		{
			name:         "ErrSessionNotFound",
			refreshToken: refreshToken,
			buildStubs: func(sessionService *MockService) {
				sessionService.EXPECT().
					RenewAccessToken(gomock.Any(), gomock.Eq(refreshToken)).
					Times(1).
					Return("", time.Time{}, domain.ErrSessionNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrSessionNotFound.Error(),
		},
		{
			name:         "InternalError",
			refreshToken: refreshToken,
			buildStubs: func(sessionService *MockService) {
				sessionService.EXPECT().
					RenewAccessToken(gomock.Any(), gomock.Eq(refreshToken)).
					Times(1).
					Return("", time.Time{}, sql.ErrConnDone)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      errorspkg.ErrInternal.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// Initialize mocks
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			sessionService := NewMockService(ctrl)
			sessionHandler := NewHandler(sessionService)

			server := gin.New()
			server.POST("/sessions/renew", sessionHandler.RenewAccessToken)

			tc.buildStubs(sessionService)

			// Send request
			body, err := json.Marshal(gin.H{"refresh_token": tc.refreshToken})
			if err != nil {
				t.Fatalf("Encoding request body error: %v", err)
			}

			req, err := http.NewRequest(http.MethodPost, "/sessions/renew", bytes.NewReader(body))
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			// Test response
			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			if tc.wantStatusCode == http.StatusOK {
				var got struct {
					AccessToken          string    `json:"access_token"`
					AccessTokenExpiresAt time.Time `json:"access_token_expires_at"`
				}

				if err := json.NewDecoder(recorder.Body).Decode(&got); err != nil {
					t.Fatalf("Decoding response body error: %v", err)
				}

				if got.AccessToken != accessToken {
					t.Errorf("got.AccessToken=%q, want %q", got.AccessToken, accessToken)
				}

				if !got.AccessTokenExpiresAt.Equal(accessTokenExpiresAt) {
					t.Errorf("got.AccessTokenExpiresAt=%v, want %v", got.AccessTokenExpiresAt, accessTokenExpiresAt)
				}

				return
			}

			if tc.wantError == "" {
				return
			}

			var res web.Response
			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Fatalf("Decoding response body error: %v", err)
			}

			if res.Error != tc.wantError {
				t.Errorf(`resp.Error=%q, want %q`, res.Error, tc.wantError)
			}
		})
	}
}