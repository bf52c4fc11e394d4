package tokenpkg

import (
	"testing"
	"time"

	"github.com/go-petr/taka-track/pkg/randompkg"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestJWTMaker(t *testing.T) {
	t.Parallel()

	secretKey := randompkg.String(32)

	maker, err := NewJWTMaker(secretKey)
	if err != nil {
		t.Fatalf("NewJWTMaker(%v) returned error: %v", secretKey, err)
	}

	username := randompkg.Owner()
	duration := time.Minute

	token, payload, err := maker.CreateToken(username, duration)
	if err != nil {
		t.Errorf("maker.CreateToken(%v, %v) returned error: %v", username, duration, err)
	}

	_, err = maker.VerifyToken(token)
	if err != nil {
		t.Errorf("maker.VerifyToken(%v) returned error: %v", token, err)
	}

	want := &Payload{
		Username:  username,
		IssuedAt:  time.Now(),
		ExpiredAt: time.Now().Add(duration),
	}

	ignore := cmpopts.IgnoreFields(Payload{}, "ID")
	delta := cmpopts.EquateApproxTime(time.Minute)

	if diff := cmp.Diff(payload, want, ignore, delta); diff != "" {
		t.Errorf("maker.CreateToken(%v, %v) returned unexpected diff: %v", username, duration, diff)
	}
}

func TestShortJWTSecretKey(t *testing.T) {
	t.Parallel()

	secretKey := randompkg.String(minSecretKeySize - 1)

	if _, err := NewJWTMaker(secretKey); err == nil {
		t.Errorf("NewJWTMaker(%v) returned nil error, want key size error", secretKey)
	}
}

func TestInvalidJWTToken(t *testing.T) {
	t.Parallel()

	maker, err := NewJWTMaker(randompkg.String(32))
	if err != nil {
		t.Fatalf("NewJWTMaker() returned error: %v", err)
	}

	if _, err := maker.VerifyToken("not.a.token"); err != ErrInvalidToken {
		t.Errorf("maker.VerifyToken(invalid) returned %v, want %v", err, ErrInvalidToken)
	}
}
