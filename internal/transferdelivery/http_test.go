package transferdelivery

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/go-petr/taka-track/internal/domain"
	"github.com/go-petr/taka-track/internal/middleware"
	"github.com/go-petr/taka-track/internal/test"
	"github.com/go-petr/taka-track/pkg/errorspkg"
	"github.com/go-petr/taka-track/pkg/randompkg"
	"github.com/go-petr/taka-track/pkg/tokenpkg"
	"github.com/go-petr/taka-track/pkg/web"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestCreate(t *testing.T) {
	username := randompkg.Owner()
	fromAccount := test.RandomAccount(username)
	toAccount := test.RandomAccount(username)
	toAccount.ID = fromAccount.ID + 1
	amount := "100.50"
	tokenSymmetricKey := randompkg.String(32)

	tokenMaker, err := tokenpkg.NewPasetoMaker(tokenSymmetricKey)
	if err != nil {
		t.Fatalf("tokenpkg.NewPasetoMaker(%v) returned error: %v", tokenSymmetricKey, err)
	}

	authType := middleware.AuthTypeBearer
	duration := time.Minute

	result := domain.TransferTxResult{
		Transfer: domain.Transfer{
			ID:            1,
			Owner:         username,
			FromAccountID: fromAccount.ID,
			ToAccountID:   toAccount.ID,
			Amount:        amount,
			CreatedAt:     time.Now().Truncate(time.Second).UTC(),
		},
		FromAccount: fromAccount,
		ToAccount:   toAccount,
	}

	type requestBody struct {
		FromAccountID int32  `json:"from_account_id"`
		ToAccountID   int32  `json:"to_account_id"`
		Amount        string `json:"amount"`
	}

	testCases := []struct {
		name           string
		requestBody    requestBody
		setupAuth      func(t *testing.T, r *http.Request) error
		buildStubs     func(transferService *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name: "OK",
			requestBody: requestBody{
				FromAccountID: fromAccount.ID,
				ToAccountID:   toAccount.ID,
				Amount:        amount,
			},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(transferService *MockService) {
				arg := domain.CreateTransferParams{
					Owner:         username,
					FromAccountID: fromAccount.ID,
					ToAccountID:   toAccount.ID,
					Amount:        amount,
				}

				transferService.EXPECT().
					Transfer(gomock.Any(), gomock.Eq(arg)).
					Times(1).
					Return(result, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "NoAuthorization",
			requestBody: requestBody{
				FromAccountID: fromAccount.ID,
				ToAccountID:   toAccount.ID,
				Amount:        amount,
			},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return nil
			},
			buildStubs: func(transferService *MockService) {
				transferService.EXPECT().
					Transfer(gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusUnauthorized,
			wantError:      middleware.ErrAuthHeaderNotFound.Error(),
		},
		{
			name: "MissingToAccountID",
			requestBody: requestBody{
				FromAccountID: fromAccount.ID,
				Amount:        amount,
			},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(transferService *MockService) {
				transferService.EXPECT().
					Transfer(gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "ToAccountID is required",
		},
		{
			name: "ErrSameAccountTransfer",
			requestBody: requestBody{
				FromAccountID: fromAccount.ID,
				ToAccountID:   fromAccount.ID,
				Amount:        amount,
			},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(transferService *MockService) {
				transferService.EXPECT().
					Transfer(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.TransferTxResult{}, domain.ErrSameAccountTransfer)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      domain.ErrSameAccountTransfer.Error(),
		},
		{
			name: "ErrInvalidOwner",
			requestBody: requestBody{
				FromAccountID: fromAccount.ID,
				ToAccountID:   toAccount.ID,
				Amount:        amount,
			},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(transferService *MockService) {
				transferService.EXPECT().
					Transfer(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.TransferTxResult{}, domain.ErrInvalidOwner)
			},
			wantStatusCode: http.StatusUnauthorized,
			wantError:      domain.ErrInvalidOwner.Error(),
		},
		{
			name: "ErrInsufficientBalance",
			requestBody: requestBody{
				FromAccountID: fromAccount.ID,
				ToAccountID:   toAccount.ID,
				Amount:        amount,
			},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(transferService *MockService) {
				transferService.EXPECT().
					Transfer(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.TransferTxResult{}, domain.ErrInsufficientBalance)
			},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      domain.ErrInsufficientBalance.Error(),
		},
		{
			name: "InternalError",
			requestBody: requestBody{
				FromAccountID: fromAccount.ID,
				ToAccountID:   toAccount.ID,
				Amount:        amount,
			},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(transferService *MockService) {
				transferService.EXPECT().
					Transfer(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.TransferTxResult{}, sql.ErrConnDone)
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
			transferService := NewMockService(ctrl)
			transferHandler := NewHandler(transferService)

			server := gin.New()
			server.Use(middleware.AuthMiddleware(tokenMaker))
			server.POST("/transfers", transferHandler.Create)

			tc.buildStubs(transferService)

			// Send request
			body, err := json.Marshal(tc.requestBody)
			if err != nil {
				t.Fatalf("Encoding request body error: %v", err)
			}

			req, err := http.NewRequest(http.MethodPost, "/transfers", bytes.NewReader(body))
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			if err = tc.setupAuth(t, req); err != nil {
				t.Fatalf("tc.setupAuth(t, %+v) returned error: %v", req, err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			// Test response
			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{
				Data: &struct {
					Transfer domain.TransferTxResult `json:"transfer"`
				}{},
			}

			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Fatalf("Decoding response body error: %v", err)
			}

			if tc.wantStatusCode != http.StatusOK {
				if res.Error != tc.wantError {
					t.Errorf(`resp.Error=%q, want %q`, res.Error, tc.wantError)
				}

				return
			}

			got, ok := res.Data.(*struct {
				Transfer domain.TransferTxResult `json:"transfer"`
			})
			if !ok {
				t.Fatalf(`res.Data=%v, failed type conversion`, res.Data)
			}

			compareCreatedAt := cmpopts.EquateApproxTime(time.Second)
			if diff := cmp.Diff(result, got.Transfer, compareCreatedAt); diff != "" {
				t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestList(t *testing.T) {
	username := randompkg.Owner()
	fromAccount := test.RandomAccount(username)
	toAccount := test.RandomAccount(username)
	toAccount.ID = fromAccount.ID + 1
	tokenSymmetricKey := randompkg.String(32)

	tokenMaker, err := tokenpkg.NewPasetoMaker(tokenSymmetricKey)
	if err != nil {
		t.Fatalf("tokenpkg.NewPasetoMaker(%v) returned error: %v", tokenSymmetricKey, err)
	}

	authType := middleware.AuthTypeBearer
	duration := time.Minute

	n := 5
	transfers := make([]domain.Transfer, n)

	for i := 0; i < n; i++ {
		transfers[i] = domain.Transfer{
			ID:            int64(i + 1),
			Owner:         username,
			FromAccountID: fromAccount.ID,
			ToAccountID:   toAccount.ID,
			Amount:        randompkg.MoneyAmountBetween(10, 100),
			CreatedAt:     time.Now().Truncate(time.Second).UTC(),
		}
	}

	testCases := []struct {
		name           string
		pageID         int32
		pageSize       int32
		setupAuth      func(t *testing.T, r *http.Request) error
		buildStubs     func(transferService *MockService, pageSize, pageID int32)
		wantStatusCode int
		wantError      string
	}{
		{
			name:     "OK",
			pageID:   1,
			pageSize: 5,
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(transferService *MockService, pageSize, pageID int32) {
				transferService.EXPECT().
					List(gomock.Any(), gomock.Eq(username), gomock.Eq(pageSize), gomock.Eq(pageID)).
					Times(1).
					Return(transfers, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:     "InvalidPageSize",
			pageID:   1,
			pageSize: 0,
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(transferService *MockService, pageSize, pageID int32) {
				transferService.EXPECT().
					List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "PageSize is required",
		},
		{
			name:     "InternalError",
			pageID:   1,
			pageSize: 5,
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(transferService *MockService, pageSize, pageID int32) {
				transferService.EXPECT().
					List(gomock.Any(), gomock.Eq(username), gomock.Eq(pageSize), gomock.Eq(pageID)).
					Times(1).
					Return(nil, errorspkg.ErrInternal)
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
			transferService := NewMockService(ctrl)
			transferHandler := NewHandler(transferService)

			server := gin.New()
			server.Use(middleware.AuthMiddleware(tokenMaker))
			server.GET("/transfers", transferHandler.List)

			tc.buildStubs(transferService, tc.pageSize, tc.pageID)

			// Send request
			url := fmt.Sprintf("/transfers?page_id=%v&page_size=%v", tc.pageID, tc.pageSize)
			req, err := http.NewRequest(http.MethodGet, url, nil)
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			if err = tc.setupAuth(t, req); err != nil {
				t.Fatalf("tc.setupAuth(t, %+v) returned error: %v", req, err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			// Test response
			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{
				Data: &struct {
					Transfers []domain.Transfer `json:"transfers"`
				}{},
			}

			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Fatalf("Decoding response body error: %v", err)
			}

			if tc.wantStatusCode != http.StatusOK {
				if res.Error != tc.wantError {
					t.Errorf(`resp.Error=%q, want %q`, res.Error, tc.wantError)
				}

				return
			}

			got, ok := res.Data.(*struct {
				Transfers []domain.Transfer `json:"transfers"`
			})
			if !ok {
				t.Fatalf(`res.Data=%v, failed type conversion`, res.Data)
			}

			compareCreatedAt := cmpopts.EquateApproxTime(time.Second)
			if diff := cmp.Diff(transfers, got.Transfers, compareCreatedAt); diff != "" {
				t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
			}
		})
	}
}