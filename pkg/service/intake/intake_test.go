package intake

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/constants"
	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/core"
	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/lumber"
	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/supabase"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type callLog []string

type fakeRemote struct {
	err   error
	rows  []*core.DemoRequest
	calls *callLog
}

func (f *fakeRemote) Create(_ context.Context, req *core.DemoRequest) error {
	*f.calls = append(*f.calls, constants.StorageSupabase)
	f.rows = append(f.rows, req)
	return f.err
}

type fakeProvider struct {
	store  core.RemoteDemoStore
	status core.RemoteStoreStatus
}

func (f *fakeProvider) Client() core.RemoteDemoStore {
	return f.store
}

func (f *fakeProvider) Status() core.RemoteStoreStatus {
	return f.status
}

type fakeLocal struct {
	err   error
	saved int
	calls *callLog
}

func (f *fakeLocal) Save(_ context.Context, fullName, email string) (*core.DemoRequest, error) {
	*f.calls = append(*f.calls, "local")
	if f.err != nil {
		return nil, f.err
	}
	f.saved++
	return &core.DemoRequest{ID: "1", FullName: fullName, Email: email, CreatedAt: "2026-10-19T09:30:00.123Z"}, nil
}

type fakeRecorder struct {
	outcomes []core.IntakeOutcome
}

func (f *fakeRecorder) Observe(outcome core.IntakeOutcome, _ time.Duration) {
	f.outcomes = append(f.outcomes, outcome)
}

type fixture struct {
	svc      *service
	remote   *fakeRemote
	local    *fakeLocal
	recorder *fakeRecorder
	calls    *callLog
	logs     *observer.ObservedLogs
}

func newFixture(remoteConfigured bool, remoteErr, localErr error) *fixture {
	calls := new(callLog)
	remote := &fakeRemote{err: remoteErr, calls: calls}
	provider := &fakeProvider{}
	if remoteConfigured {
		provider.store = remote
	}
	local := &fakeLocal{err: localErr, calls: calls}
	recorder := &fakeRecorder{}
	obsCore, logs := observer.New(zapcore.DebugLevel)
	svc := New(provider, local, recorder, lumber.FromZap(zap.New(obsCore))).(*service)
	svc.now = func() time.Time { return time.Date(2026, 10, 19, 9, 30, 0, 123456789, time.UTC) }
	return &fixture{svc: svc, remote: remote, local: local, recorder: recorder, calls: calls, logs: logs}
}

var validInput = core.DemoRequestInput{FullName: "  Ada Lovelace ", Email: " ada@example.com\n"}

func TestSubmitOutcomes(t *testing.T) {
	remoteErr := &supabase.Error{StatusCode: 500, Message: "relation does not exist", Code: "42P01"}
	localErr := errors.New("attempt to write a readonly database")

	tests := []struct {
		name        string
		remote      bool
		remoteErr   error
		localErr    error
		input       core.DemoRequestInput
		wantOutcome core.IntakeOutcome
		wantStorage string
		wantCalls   callLog
	}{
		{
			name:        "remote_success",
			remote:      true,
			input:       validInput,
			wantOutcome: core.OutcomeStoredRemote,
			wantStorage: constants.StorageSupabase,
			wantCalls:   callLog{constants.StorageSupabase},
		},
		{
			name:        "remote_unconfigured",
			input:       validInput,
			wantOutcome: core.OutcomeStoredLocalDirect,
			wantStorage: constants.StorageLocal,
			wantCalls:   callLog{"local"},
		},
		{
			name:        "remote_failure_falls_back",
			remote:      true,
			remoteErr:   remoteErr,
			input:       validInput,
			wantOutcome: core.OutcomeStoredLocalFallback,
			wantStorage: constants.StorageLocalFallback,
			wantCalls:   callLog{constants.StorageSupabase, "local"},
		},
		{
			name:        "both_fail",
			remote:      true,
			remoteErr:   remoteErr,
			localErr:    localErr,
			input:       validInput,
			wantOutcome: core.OutcomeStorageFailed,
			wantCalls:   callLog{constants.StorageSupabase, "local"},
		},
		{
			name:        "local_direct_fails",
			localErr:    localErr,
			input:       validInput,
			wantOutcome: core.OutcomeStorageFailed,
			wantCalls:   callLog{"local"},
		},
		{
			name:        "blank_name",
			remote:      true,
			input:       core.DemoRequestInput{FullName: "   ", Email: "ada@example.com"},
			wantOutcome: core.OutcomeInvalidInput,
		},
		{
			name:        "missing_email",
			input:       core.DemoRequestInput{FullName: "Ada"},
			wantOutcome: core.OutcomeInvalidInput,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(tt.remote, tt.remoteErr, tt.localErr)
			result := f.svc.Submit(context.Background(), tt.input)

			assert.Equal(t, tt.wantOutcome, result.Outcome)
			assert.Equal(t, tt.wantStorage, result.Storage)
			assert.Equal(t, tt.wantCalls, *f.calls)
			assert.Equal(t, []core.IntakeOutcome{tt.wantOutcome}, f.recorder.outcomes)
			if tt.wantOutcome.Stored() {
				require.NotNil(t, result.Request)
				assert.Equal(t, "Ada Lovelace", result.Request.FullName)
				assert.Equal(t, "ada@example.com", result.Request.Email)
				assert.Empty(t, result.Message)
			} else {
				assert.Nil(t, result.Request)
				assert.NotEmpty(t, result.Message)
			}
		})
	}
}

func TestSubmitRemoteRow(t *testing.T) {
	f := newFixture(true, nil, nil)
	result := f.svc.Submit(context.Background(), validInput)

	require.Len(t, f.remote.rows, 1)
	row := f.remote.rows[0]
	_, err := uuid.Parse(row.ID)
	assert.NoError(t, err)
	assert.Equal(t, "2026-10-19T09:30:00.123Z", row.CreatedAt)
	assert.Equal(t, "Ada Lovelace", row.FullName)
	assert.Same(t, row, result.Request)
	assert.Zero(t, f.local.saved)
}

func TestSubmitFallbackKeepsRemoteError(t *testing.T) {
	remoteErr := &supabase.Error{StatusCode: 401, Message: "Invalid API key", Hint: "check the key"}
	f := newFixture(true, remoteErr, nil)
	result := f.svc.Submit(context.Background(), validInput)

	assert.Equal(t, core.OutcomeStoredLocalFallback, result.Outcome)
	assert.Equal(t, remoteErr, result.RemoteErr)
	assert.Nil(t, result.LocalErr)
	assert.Equal(t, 1, f.local.saved)

	entries := f.logs.FilterLevelExact(zapcore.ErrorLevel).All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "Invalid API key", fields["message"])
	assert.Equal(t, "check the key", fields["hint"])
	assert.Equal(t, int64(401), fields["status"])
}

func TestSubmitCombinedFailureMessage(t *testing.T) {
	remoteErr := &supabase.Error{StatusCode: 500, Message: "boom", Code: "XX000"}
	localErr := errors.New("unable to open database file")

	f := newFixture(true, remoteErr, localErr)
	result := f.svc.Submit(context.Background(), validInput)
	assert.Equal(t, "Failed to save demo request. Remote error: supabase: boom (code XX000). Local error: unable to open database file", result.Message)
	assert.Equal(t, remoteErr, result.RemoteErr)
	assert.Equal(t, localErr, result.LocalErr)
	assert.Equal(t, 2, f.logs.FilterLevelExact(zapcore.ErrorLevel).Len())

	f = newFixture(false, nil, localErr)
	result = f.svc.Submit(context.Background(), validInput)
	assert.Equal(t, "Failed to save demo request. Local error: unable to open database file", result.Message)
	assert.NotContains(t, result.Message, "Remote error")
}

func TestSubmitInvalidInputMessage(t *testing.T) {
	f := newFixture(true, nil, nil)
	result := f.svc.Submit(context.Background(), core.DemoRequestInput{FullName: "\t", Email: " "})
	assert.Equal(t, "Full name and email are required.", result.Message)
	assert.Empty(t, *f.calls)
}

func TestRemoteStatus(t *testing.T) {
	want := core.RemoteStoreStatus{HasURL: true}
	svc := New(&fakeProvider{status: want}, &fakeLocal{calls: &callLog{}}, nil, lumber.FromZap(zap.NewNop()))
	assert.Equal(t, want, svc.RemoteStatus())
}
