// Package intake records demo requests in the remote store, falling back to
// the local store when the remote one is unavailable or rejects the insert.
package intake

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/constants"
	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/core"
	errs "github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/errors"
	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/lumber"
	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/supabase"
	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/utils"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// attempt is the result of one insert against one store.
type attempt struct {
	storage string
	request *core.DemoRequest
	err     error
}

func (a attempt) ok() bool {
	return a.err == nil
}

type service struct {
	remote   core.RemoteStoreProvider
	local    core.LocalDemoStore
	recorder core.IntakeRecorder
	logger   lumber.Logger
	now      func() time.Time
	newID    func() string
}

// New returns a new intake service. recorder may be nil.
func New(remote core.RemoteStoreProvider,
	local core.LocalDemoStore,
	recorder core.IntakeRecorder,
	logger lumber.Logger) core.IntakeService {
	return &service{
		remote:   remote,
		local:    local,
		recorder: recorder,
		logger:   logger,
		now:      time.Now,
		newID:    utils.GenerateUUID,
	}
}

func (s *service) RemoteStatus() core.RemoteStoreStatus {
	return s.remote.Status()
}

// Submit validates the input, then tries the remote store when it is
// configured and the local store otherwise or after a remote failure. The
// local store is tried at most once and nothing is retried.
func (s *service) Submit(ctx context.Context, input core.DemoRequestInput) *core.IntakeResult {
	start := time.Now()
	ctx, span := otel.Tracer(constants.ServiceName).Start(ctx, "intake.Submit")
	defer span.End()

	result := s.submit(ctx, input)

	span.SetAttributes(
		attribute.String("intake.outcome", result.Outcome.String()),
		attribute.String("intake.storage", result.Storage),
	)
	if !result.Outcome.Stored() {
		span.SetStatus(codes.Error, result.Message)
	}
	if s.recorder != nil {
		s.recorder.Observe(result.Outcome, time.Since(start))
	}
	return result
}

func (s *service) submit(ctx context.Context, input core.DemoRequestInput) *core.IntakeResult {
	fullName, email := input.FullName, input.Email
	utils.TrimFields(&fullName, &email)
	if fullName == "" || email == "" {
		return &core.IntakeResult{
			Outcome: core.OutcomeInvalidInput,
			Message: errs.ErrMissingDemoFields.Error(),
		}
	}

	remote := s.remote.Client()
	if remote == nil {
		local := s.insertLocal(ctx, fullName, email, constants.StorageLocal)
		if !local.ok() {
			return s.failed(nil, local.err)
		}
		return &core.IntakeResult{Outcome: core.OutcomeStoredLocalDirect, Storage: local.storage, Request: local.request}
	}

	primary := s.insertRemote(ctx, remote, fullName, email)
	if primary.ok() {
		return &core.IntakeResult{Outcome: core.OutcomeStoredRemote, Storage: primary.storage, Request: primary.request}
	}

	fallback := s.insertLocal(ctx, fullName, email, constants.StorageLocalFallback)
	if !fallback.ok() {
		return s.failed(primary.err, fallback.err)
	}
	s.logger.Infof("demo request %s saved to local fallback store after remote failure", fallback.request.ID)
	return &core.IntakeResult{
		Outcome:   core.OutcomeStoredLocalFallback,
		Storage:   fallback.storage,
		Request:   fallback.request,
		RemoteErr: primary.err,
	}
}

func (s *service) insertRemote(ctx context.Context, remote core.RemoteDemoStore, fullName, email string) attempt {
	req := &core.DemoRequest{
		ID:        s.newID(),
		FullName:  fullName,
		Email:     email,
		CreatedAt: utils.ISOTimestamp(s.now()),
	}
	if err := remote.Create(ctx, req); err != nil {
		s.logRemoteError(err)
		return attempt{storage: constants.StorageSupabase, err: err}
	}
	return attempt{storage: constants.StorageSupabase, request: req}
}

func (s *service) insertLocal(ctx context.Context, fullName, email, storage string) attempt {
	req, err := s.local.Save(ctx, fullName, email)
	if err != nil {
		s.logger.WithFields(lumber.Fields{"storage": storage}).Errorf("local demo store insert failed: %v", err)
		return attempt{storage: storage, err: err}
	}
	return attempt{storage: storage, request: req}
}

func (s *service) logRemoteError(err error) {
	fields := lumber.Fields{"storage": constants.StorageSupabase}
	var apiErr *supabase.Error
	if errors.As(err, &apiErr) {
		fields["status"] = apiErr.StatusCode
		fields["message"] = apiErr.Message
		fields["code"] = apiErr.Code
		fields["details"] = apiErr.Details
		fields["hint"] = apiErr.Hint
	}
	s.logger.WithFields(fields).Errorf("remote demo store insert failed, falling back to local store: %v", err)
}

func (s *service) failed(remoteErr, localErr error) *core.IntakeResult {
	return &core.IntakeResult{
		Outcome:   core.OutcomeStorageFailed,
		RemoteErr: remoteErr,
		LocalErr:  localErr,
		Message:   failureMessage(remoteErr, localErr),
	}
}

// failureMessage joins the remote diagnostic, when there is one, with the local one.
func failureMessage(remoteErr, localErr error) string {
	var b strings.Builder
	b.WriteString(errs.ErrSaveFailed.Error())
	if remoteErr != nil {
		fmt.Fprintf(&b, " Remote error: %s.", strings.TrimSuffix(remoteErr.Error(), "."))
	}
	if localErr != nil {
		fmt.Fprintf(&b, " Local error: %s", localErr.Error())
	}
	return b.String()
}
