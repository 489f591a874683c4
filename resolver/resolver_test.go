package resolver_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"github.com/stretchr/testify/assert"

	"github.com/axelarnetwork/utils/funcs"
	. "github.com/axelarnetwork/utils/test"
	"github.com/polypuls3/polypulse/reader/contract"
	"github.com/polypuls3/polypulse/reader/index"
	"github.com/polypuls3/polypulse/resolver"
	"github.com/polypuls3/polypulse/resolver/mock"
	"github.com/polypuls3/polypulse/types"
	"github.com/polypuls3/polypulse/types/testutils"
)

var (
	_ resolver.Reader = &contract.Reader{}
	_ resolver.Reader = &index.Reader{}
)

const chainID = uint64(80002)

func newReader(source types.ActiveSource) *mock.ReaderMock {
	return &mock.ReaderMock{SourceFunc: func() types.ActiveSource { return source }}
}

func readPoll(pollID math.Uint) func(context.Context, resolver.Reader) (*types.Poll, error) {
	return func(ctx context.Context, r resolver.Reader) (*types.Poll, error) {
		return r.ReadPoll(ctx, chainID, pollID)
	}
}

func TestNew(t *testing.T) {
	_, err := resolver.New(log.NewNopLogger(), resolver.Config{Source: "graph"}, newReader(types.ActiveContract), newReader(types.ActiveIndex))
	assert.True(t, errors.Is(err, types.ErrInvalidRequest))

	_, err = resolver.New(log.NewNopLogger(), resolver.Config{Source: types.SourceAuto}, newReader(types.ActiveContract), newReader(types.ActiveIndex))
	assert.True(t, errors.Is(err, types.ErrInvalidRequest))

	_, err = resolver.New(log.NewNopLogger(), resolver.DefaultConfig(), newReader(types.ActiveContract), newReader(types.ActiveIndex))
	assert.NoError(t, err)
}

func TestResolver_Plan(t *testing.T) {
	contractReader := newReader(types.ActiveContract)
	indexReader := newReader(types.ActiveIndex)

	testCases := []struct {
		name     string
		config   resolver.Config
		override []types.DataSource
		expected []types.ActiveSource
	}{
		{"contract", resolver.Config{Source: types.SourceContract}, nil, []types.ActiveSource{types.ActiveContract}},
		{"index", resolver.Config{Source: types.SourceIndex}, nil, []types.ActiveSource{types.ActiveIndex}},
		{"auto", resolver.DefaultConfig(), nil, []types.ActiveSource{types.ActiveIndex, types.ActiveContract}},
		{"auto without fallback", resolver.Config{Source: types.SourceAuto, Timeout: time.Second}, nil, []types.ActiveSource{types.ActiveIndex}},
		{"override", resolver.DefaultConfig(), []types.DataSource{types.SourceContract}, []types.ActiveSource{types.ActiveContract}},
		{"empty override", resolver.Config{Source: types.SourceIndex}, []types.DataSource{""}, []types.ActiveSource{types.ActiveIndex}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			r := funcs.Must(resolver.New(log.NewNopLogger(), testCase.config, contractReader, indexReader))

			plan, err := r.Plan(testCase.override...)
			assert.NoError(t, err)
			assert.Equal(t, testCase.expected, plan.Sources())
		})
	}

	r := funcs.Must(resolver.New(log.NewNopLogger(), resolver.DefaultConfig(), contractReader, indexReader))
	_, err := r.Plan("graph")
	assert.True(t, errors.Is(err, types.ErrInvalidRequest))
}

func TestExecute(t *testing.T) {
	var (
		contractReader *mock.ReaderMock
		indexReader    *mock.ReaderMock
		r              *resolver.Resolver
		poll           types.Poll
		config         resolver.Config
	)

	givenResolver := Given("a resolver in auto mode", func() {
		contractReader = newReader(types.ActiveContract)
		indexReader = newReader(types.ActiveIndex)
		poll = testutils.RandomPoll()
		config = resolver.DefaultConfig()
		config.Timeout = 20 * time.Millisecond

		contractReader.ReadPollFunc = func(context.Context, uint64, math.Uint) (*types.Poll, error) { return &poll, nil }
	})

	execute := func(ctx context.Context) resolver.Outcome[*types.Poll] {
		r = funcs.Must(resolver.New(log.NewNopLogger(), config, contractReader, indexReader))
		return resolver.Execute(ctx, funcs.Must(r.Plan()), readPoll(poll.ID))
	}

	givenResolver.
		When("the index answers", func() {
			indexReader.ReadPollFunc = func(context.Context, uint64, math.Uint) (*types.Poll, error) { return &poll, nil }
		}).
		Then("should resolve from the index without touching the contract", func(t *testing.T) {
			outcome := execute(context.Background())
			assert.NoError(t, outcome.Err)
			assert.Equal(t, resolver.Resolved, outcome.State)
			assert.Equal(t, types.ActiveIndex, outcome.Source)
			assert.Equal(t, &poll, outcome.Value)
			assert.Empty(t, outcome.Warnings)
			assert.Len(t, contractReader.ReadPollCalls(), 0)
		}).
		Run(t)

	givenResolver.
		When("the index does not know the poll", func() {
			indexReader.ReadPollFunc = func(context.Context, uint64, math.Uint) (*types.Poll, error) { return nil, nil }
		}).
		Then("should take the empty answer as authoritative", func(t *testing.T) {
			outcome := execute(context.Background())
			assert.Equal(t, resolver.Resolved, outcome.State)
			assert.Equal(t, types.ActiveIndex, outcome.Source)
			assert.Nil(t, outcome.Value)
			assert.Len(t, contractReader.ReadPollCalls(), 0)
		}).
		Run(t)

	givenResolver.
		When("the index fails", func() {
			indexReader.ReadPollFunc = func(context.Context, uint64, math.Uint) (*types.Poll, error) {
				return nil, types.ErrIndexUnavailable
			}
		}).
		Then("should fall back to the contract once", func(t *testing.T) {
			outcome := execute(context.Background())
			assert.NoError(t, outcome.Err)
			assert.Equal(t, resolver.Resolved, outcome.State)
			assert.Equal(t, types.ActiveContract, outcome.Source)
			assert.Equal(t, &poll, outcome.Value)
			assert.Len(t, outcome.Warnings, 1)
			assert.Len(t, indexReader.ReadPollCalls(), 1)
			assert.Len(t, contractReader.ReadPollCalls(), 1)
		}).
		Run(t)

	givenResolver.
		When("the index does not answer in time", func() {
			indexReader.ReadPollFunc = func(ctx context.Context, _ uint64, _ math.Uint) (*types.Poll, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			}
		}).
		Then("should fall back to the contract", func(t *testing.T) {
			outcome := execute(context.Background())
			assert.Equal(t, types.ActiveContract, outcome.Source)
			assert.Contains(t, outcome.Warnings[0], types.ErrIndexTimeout.Error())
		}).
		Run(t)

	givenResolver.
		When("the index ignores its deadline", func() {
			indexReader.ReadPollFunc = func(context.Context, uint64, math.Uint) (*types.Poll, error) {
				time.Sleep(500 * time.Millisecond)
				return &poll, nil
			}
		}).
		Then("should not wait for the index beyond the timeout", func(t *testing.T) {
			start := time.Now()
			outcome := execute(context.Background())
			assert.Equal(t, types.ActiveContract, outcome.Source)
			assert.Less(t, time.Since(start), 400*time.Millisecond)
		}).
		Run(t)

	givenResolver.
		When("fallback is disabled and the index does not answer in time", func() {
			config.AutoFallback = false
			indexReader.ReadPollFunc = func(ctx context.Context, _ uint64, _ math.Uint) (*types.Poll, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			}
		}).
		Then("should fail with a timeout", func(t *testing.T) {
			outcome := execute(context.Background())
			assert.Equal(t, resolver.Failed, outcome.State)
			assert.Equal(t, types.ActiveNone, outcome.Source)
			assert.True(t, errors.Is(outcome.Err, types.ErrIndexTimeout))
			assert.Len(t, contractReader.ReadPollCalls(), 0)
		}).
		Run(t)

	givenResolver.
		When("both sources fail", func() {
			indexReader.ReadPollFunc = func(context.Context, uint64, math.Uint) (*types.Poll, error) {
				return nil, types.ErrIndexUnavailable
			}
			contractReader.ReadPollFunc = func(context.Context, uint64, math.Uint) (*types.Poll, error) {
				return nil, types.ErrRead
			}
		}).
		Then("should fail with the contract error", func(t *testing.T) {
			outcome := execute(context.Background())
			assert.Equal(t, resolver.Failed, outcome.State)
			assert.Equal(t, types.ActiveNone, outcome.Source)
			assert.True(t, errors.Is(outcome.Err, types.ErrRead))
			assert.Len(t, indexReader.ReadPollCalls(), 1)
		}).
		Run(t)

	givenResolver.
		When("the caller gives up while the index is reading", func() {
			indexReader.ReadPollFunc = func(ctx context.Context, _ uint64, _ math.Uint) (*types.Poll, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			}
		}).
		Then("should stop without falling back", func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			outcome := execute(ctx)
			assert.Equal(t, resolver.Failed, outcome.State)
			assert.True(t, errors.Is(outcome.Err, context.Canceled))
			assert.Len(t, contractReader.ReadPollCalls(), 0)
		}).
		Run(t)
}

func TestOutcome_Pinned(t *testing.T) {
	contractReader := newReader(types.ActiveContract)
	indexReader := newReader(types.ActiveIndex)
	r := funcs.Must(resolver.New(log.NewNopLogger(), resolver.DefaultConfig(), contractReader, indexReader))
	poll := testutils.RandomPoll()

	indexReader.ReadPollFunc = func(context.Context, uint64, math.Uint) (*types.Poll, error) { return nil, types.ErrIndexUnavailable }
	contractReader.ReadPollFunc = func(context.Context, uint64, math.Uint) (*types.Poll, error) { return &poll, nil }

	outcome := resolver.Execute(context.Background(), funcs.Must(r.Plan()), readPoll(poll.ID))
	assert.Equal(t, []types.ActiveSource{types.ActiveContract}, outcome.Pinned().Sources())

	replay := resolver.Execute(context.Background(), outcome.Pinned(), readPoll(poll.ID))
	assert.Equal(t, types.ActiveContract, replay.Source)
	assert.Len(t, indexReader.ReadPollCalls(), 1)

	contractReader.ReadPollFunc = func(context.Context, uint64, math.Uint) (*types.Poll, error) { return nil, types.ErrRead }
	failed := resolver.Execute(context.Background(), funcs.Must(r.Plan()), readPoll(poll.ID))
	assert.Equal(t, []types.ActiveSource{types.ActiveIndex, types.ActiveContract}, failed.Pinned().Sources())
}
