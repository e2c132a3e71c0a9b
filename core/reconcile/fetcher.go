package reconcile

import (
	"context"
	"fmt"
	"mime"
	"strings"
)

// RemoteResponse is the raw result of a remote GET.
type RemoteResponse struct {
	Status  int
	Headers map[string]string
	Body    []byte
}

// RemoteFetcher performs HTTP GET requests.
type RemoteFetcher interface {
	Get(ctx context.Context, url string) (*RemoteResponse, error)
}

// LocalReader gives read access to the import directory.
type LocalReader interface {
	// Exists reports whether path names an existing file.
	Exists(path string) (bool, error)
	// ReadAll returns the full contents of path.
	ReadAll(path string) ([]byte, error)
	// DetectMediaType inspects the file content and returns its media type.
	DetectMediaType(path string) (string, error)
}

// Policy gates the two fetch branches.
type Policy struct {
	AllowRemote bool
	AllowLocal  bool
}

// ResolutionKind tells the caller what Resolve produced.
type ResolutionKind int

const (
	// ResolutionPassThrough means the reference is kept as a plain file reference.
	ResolutionPassThrough ResolutionKind = iota
	// ResolutionFetched means content was fetched.
	ResolutionFetched
)

// Resolution is the outcome of resolving one reference.
type Resolution struct {
	Kind      ResolutionKind
	Ref       string
	Data      []byte
	MediaType string
	Name      string
}

// Content returns the fetched payload as a Content block, or nil for pass-through
// and empty results.
func (r Resolution) Content() *Content {
	if r.Kind != ResolutionFetched || len(r.Data) == 0 {
		return nil
	}
	return NewContent(r.Data, r.MediaType, r.Name)
}

// contentTypeKeys are the header spellings seen from upstream HTTP clients.
var contentTypeKeys = []string{"Content-Type", "content-type", "Content_Type", "content_type"}

// Fetcher turns file references into content.
type Fetcher struct {
	remote   RemoteFetcher
	local    LocalReader
	basePath string
}

// NewFetcher creates a fetcher. basePath is the directory relative path
// references are resolved against. A nil collaborator disables its branch.
func NewFetcher(remote RemoteFetcher, local LocalReader, basePath string) *Fetcher {
	return &Fetcher{
		remote:   remote,
		local:    local,
		basePath: basePath,
	}
}

// BasePath returns the directory relative references are resolved against.
func (f *Fetcher) BasePath() string {
	return f.basePath
}

// Resolve turns ref into content. References without an extension, and
// references whose branch is disabled by policy, pass through untouched.
func (f *Fetcher) Resolve(ctx context.Context, ref string, policy Policy) (Resolution, error) {
	if !HasExtension(ref) {
		return Resolution{Kind: ResolutionPassThrough, Ref: ref}, nil
	}
	if IsRemote(ref) {
		if !policy.AllowRemote || f.remote == nil {
			return Resolution{Kind: ResolutionPassThrough, Ref: ref}, nil
		}
		return f.resolveURL(ctx, ref)
	}
	if !policy.AllowLocal || f.local == nil {
		return Resolution{Kind: ResolutionPassThrough, Ref: ref}, nil
	}
	return f.resolvePath(ctx, ref)
}

func (f *Fetcher) resolveURL(ctx context.Context, ref string) (Resolution, error) {
	resp, err := f.remote.Get(ctx, strings.TrimSpace(ref))
	if err != nil {
		return Resolution{}, &FetchError{Kind: KindRemoteUnavailable, Ref: ref, Err: err}
	}
	if resp.Status >= 400 {
		return Resolution{}, &FetchError{
			Kind:   KindRemoteUnavailable,
			Ref:    ref,
			Detail: fmt.Sprintf("status %d", resp.Status),
		}
	}

	mediaType := normalizeMediaType(headerMediaType(resp.Headers))
	if !strings.HasPrefix(mediaType, "image/") {
		return Resolution{}, &FetchError{
			Kind:   KindNotAnImage,
			Ref:    ref,
			Detail: fmt.Sprintf("media type %q", mediaType),
		}
	}

	return Resolution{
		Kind:      ResolutionFetched,
		Ref:       ref,
		Data:      resp.Body,
		MediaType: mediaType,
		Name:      ParseFilename(ref),
	}, nil
}

func (f *Fetcher) resolvePath(ctx context.Context, ref string) (Resolution, error) {
	if err := ctx.Err(); err != nil {
		return Resolution{}, err
	}

	file, ok := ResolveUnder(f.basePath, ref)
	if !ok {
		return Resolution{}, &FetchError{Kind: KindNotFound, Ref: ref, Detail: "outside import directory"}
	}

	exists, err := f.local.Exists(file)
	if err != nil {
		return Resolution{}, &FetchError{Kind: KindReadError, Ref: ref, Err: err}
	}
	if !exists {
		return Resolution{}, &FetchError{Kind: KindNotFound, Ref: ref, Detail: file}
	}

	data, err := f.local.ReadAll(file)
	if err != nil {
		return Resolution{}, &FetchError{Kind: KindReadError, Ref: ref, Err: err}
	}

	mediaType, err := f.local.DetectMediaType(file)
	if err != nil {
		return Resolution{}, &FetchError{Kind: KindReadError, Ref: ref, Err: err}
	}

	return Resolution{
		Kind:      ResolutionFetched,
		Ref:       ref,
		Data:      data,
		MediaType: normalizeMediaType(mediaType),
		Name:      ParseFilename(file),
	}, nil
}

// headerMediaType looks up the content type header, tolerating the key
// spellings different HTTP stacks produce.
func headerMediaType(headers map[string]string) string {
	for _, key := range contentTypeKeys {
		if v, ok := headers[key]; ok && v != "" {
			return v
		}
	}
	for key, v := range headers {
		if strings.ReplaceAll(strings.ToLower(key), "_", "-") == "content-type" {
			return v
		}
	}
	return ""
}

func normalizeMediaType(v string) string {
	if mt, _, err := mime.ParseMediaType(v); err == nil {
		return mt
	}
	return strings.ToLower(strings.TrimSpace(v))
}
