package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/goodnatureofminers/sharedvault-backend/internal/clock"
	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/model"
	"github.com/goodnatureofminers/sharedvault-backend/internal/vault/store"
)

var (
	memberA  = model.MustParseAddress("0xa")
	memberB  = model.MustParseAddress("0xb")
	memberC  = model.MustParseAddress("0xc")
	outsider = model.MustParseAddress("0xd")

	vaultOwner = model.MustParseAddress("0x100")
)

const testVaultID = "1"

func display(t *testing.T, raw string) model.Amount {
	t.Helper()
	a, err := model.ParseAmount(raw)
	if err != nil {
		t.Fatalf("ParseAmount(%q) unexpected error: %v", raw, err)
	}
	return a
}

// newSessionStore returns a store for member holding one synced vault of members A, B and C.
func newSessionStore(t *testing.T, member model.Address, balance model.Amount, required int, opts ...store.Option) *store.Store {
	t.Helper()
	v, err := model.NewVault(testVaultID, "household", vaultOwner, []model.Address{memberA, memberB, memberC}, required, balance, time.Unix(0, 0).UTC())
	if err != nil {
		t.Fatalf("NewVault() unexpected error: %v", err)
	}

	st := store.New(member, opts...)
	st.ApplySync([]model.Vault{v}, nil, time.Unix(0, 0).UTC())
	return st
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

type engineFixture struct {
	engine  *ApprovalEngine
	store   *store.Store
	clock   *clock.Mock
	trigger *MockSyncTrigger
}

func newEngineFixture(t *testing.T, ctrl *gomock.Controller, balance model.Amount, required int, opts ...EngineOption) engineFixture {
	t.Helper()

	st := newSessionStore(t, memberA, balance, required)
	mockClock := clock.NewMock()
	mockClock.Set(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))

	metrics := NewMockApprovalMetrics(ctrl)
	metrics.EXPECT().ObserveVote(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	metrics.EXPECT().ObserveTransition(gomock.Any()).AnyTimes()
	trigger := NewMockSyncTrigger(ctrl)

	opts = append([]EngineOption{WithEngineClock(mockClock), WithIDGenerator(sequentialIDs())}, opts...)
	engine, err := NewApprovalEngine(st, trigger, metrics, zapNop(), opts...)
	if err != nil {
		t.Fatalf("NewApprovalEngine() unexpected error: %v", err)
	}

	return engineFixture{engine: engine, store: st, clock: mockClock, trigger: trigger}
}
