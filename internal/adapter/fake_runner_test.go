package adapter

import (
	"context"
	"errors"
)

// fakeRunner serves canned responses keyed by the rendered command line so
// adapter tests never spawn real processes.
type fakeRunner struct {
	responses map[string]fakeResponse
	calls     []fakeCall
}

type fakeResponse struct {
	out []byte
	err error
}

type fakeCall struct {
	dir     string
	command string
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{responses: make(map[string]fakeResponse)}
}

func (f *fakeRunner) respond(command string, out string) {
	f.responses[command] = fakeResponse{out: []byte(out)}
}

func (f *fakeRunner) respondRaw(command string, out []byte) {
	f.responses[command] = fakeResponse{out: out}
}

func (f *fakeRunner) fail(command, stderr string) {
	f.responses[command] = fakeResponse{
		err: &CommandFailedError{Command: command, Stderr: stderr, Err: errors.New("exit status 1")},
	}
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) ([]byte, error) {
	command := renderCommand(name, args)
	f.calls = append(f.calls, fakeCall{dir: dir, command: command})

	resp, ok := f.responses[command]
	if !ok {
		return nil, &CommandFailedError{Command: command, Err: errors.New("unexpected command")}
	}

	if resp.err != nil {
		return nil, resp.err
	}

	return resp.out, nil
}
