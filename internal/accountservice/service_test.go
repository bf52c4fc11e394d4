package accountservice

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/taka-track/internal/domain"
	"github.com/go-petr/taka-track/internal/test"
	"github.com/go-petr/taka-track/pkg/randompkg"
)

func TestCreate(t *testing.T) {
	owner := randompkg.Owner()

	testCases := []struct {
		name        string
		balance     string
		wantBalance string
		wantError   error
	}{
		{
			name:      "InvalidBalance",
			balance:   "abc",
			wantError: domain.ErrInvalidAmount,
		},
		{
			name:      "NegativeBalance",
			balance:   "-100",
			wantError: domain.ErrNegativeAmount,
		},
		{
			name:        "ZeroBalanceAllowed",
			balance:     "0",
			wantBalance: "0",
		},
		{
			name:        "BalanceRounded",
			balance:     "100.005",
			wantBalance: "100.01",
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			accountRepoMock := NewMockRepo(ctrl)
			accountService := New(accountRepoMock)

			if tc.wantError == nil {
				accountRepoMock.EXPECT().
					Create(gomock.Any(), gomock.Eq(owner), gomock.Eq("checking"), gomock.Eq("bank"), gomock.Eq(tc.wantBalance)).
					Times(1).
					Return(domain.Account{Owner: owner, Balance: tc.wantBalance}, nil)
			} else {
				accountRepoMock.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			}

			_, err := accountService.Create(context.Background(), owner, "checking", "bank", tc.balance)
			if tc.wantError != nil {
				require.EqualError(t, err, tc.wantError.Error())
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestGetOwned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := randompkg.Owner()
	account := test.RandomAccount(owner)

	accountRepoMock := NewMockRepo(ctrl)
	accountService := New(accountRepoMock)

	accountRepoMock.EXPECT().Get(gomock.Any(), gomock.Eq(account.ID)).
		Times(2).
		Return(account, nil)

	got, err := accountService.GetOwned(context.Background(), account.ID, owner)
	require.NoError(t, err)
	require.Equal(t, account, got)

	_, err = accountService.GetOwned(context.Background(), account.ID, randompkg.Owner())
	require.EqualError(t, err, domain.ErrAccountOwnerMismatch.Error())
}

func TestList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := randompkg.Owner()

	accountRepoMock := NewMockRepo(ctrl)
	accountService := New(accountRepoMock)

	accountRepoMock.EXPECT().
		List(gomock.Any(), gomock.Eq(owner), gomock.Eq(int32(10)), gomock.Eq(int32(20))).
		Times(1).
		Return([]domain.Account{}, nil)

	_, err := accountService.List(context.Background(), owner, 10, 3)
	require.NoError(t, err)
}
