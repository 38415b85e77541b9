//go:build integration || unit || test

package runnerdoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"strings"

	"github.com/gitsleuth/gitsleuth/infrastructure/resolver/gitcli"
)

// Call records one invocation of the stub runner.
type Call struct {
	Dir  string
	Args []string
}

// Response is a canned reply for one git invocation, matched by the
// space-joined argument list.
type Response struct {
	Stdout string
	Err    error
}

// StubRunner is a stub implementation of gitcli.Runner that replays canned
// responses keyed by the argument list.
type StubRunner struct {
	Responses map[string]Response
	Calls     []Call
}

var _ gitcli.Runner = (*StubRunner)(nil)

// NewStubRunner creates a StubRunner with an empty response table.
func NewStubRunner() *StubRunner {
	return &StubRunner{Responses: make(map[string]Response)}
}

// On registers a canned response for the given argument list.
func (s *StubRunner) On(args string, stdout string, err error) *StubRunner {
	s.Responses[args] = Response{Stdout: stdout, Err: err}
	return s
}

func (s *StubRunner) Run(_ context.Context, dir string, args ...string) (string, error) {
	s.Calls = append(s.Calls, Call{Dir: dir, Args: args})

	resp, ok := s.Responses[strings.Join(args, " ")]
	if !ok {
		return "", nil
	}
	return resp.Stdout, resp.Err
}
