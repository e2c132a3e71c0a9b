package reconcile

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/stretchr/testify/mock"
)

// mockRemote is a testify mock of RemoteFetcher.
type mockRemote struct {
	mock.Mock
}

func (m *mockRemote) Get(ctx context.Context, url string) (*RemoteResponse, error) {
	args := m.Called(ctx, url)
	resp, _ := args.Get(0).(*RemoteResponse)
	return resp, args.Error(1)
}

func imageResponse(body, mediaType string) *RemoteResponse {
	return &RemoteResponse{
		Status:  200,
		Headers: map[string]string{"Content-Type": mediaType},
		Body:    []byte(body),
	}
}

// memLocal is an in-memory LocalReader.
type memLocal struct {
	files   map[string][]byte
	readErr error
	reads   atomic.Int32
}

func (m *memLocal) Exists(path string) (bool, error) {
	_, ok := m.files[path]
	return ok, nil
}

func (m *memLocal) ReadAll(path string) ([]byte, error) {
	m.reads.Add(1)
	if m.readErr != nil {
		return nil, m.readErr
	}
	data, ok := m.files[path]
	if !ok {
		return nil, errors.New("no such file")
	}
	return data, nil
}

func (m *memLocal) DetectMediaType(path string) (string, error) {
	return "image/jpeg", nil
}

// countingLoader serves existing content from a map and counts calls.
type countingLoader struct {
	files map[string][]byte
	err   error
	calls atomic.Int32
}

func (l *countingLoader) LoadContent(ctx context.Context, entry ExistingEntry) ([]byte, error) {
	l.calls.Add(1)
	if l.err != nil {
		return nil, l.err
	}
	return l.files[entry.File], nil
}

func inline(data string) *Content {
	return NewContent([]byte(data), "image/png", "inline.png")
}

func allFlags() Flags {
	return Flags{Enabled: true, PassURL: true, PassPath: true, SkipUnchanged: true}
}
