package reconcile

import (
	"net/url"
	"path"
	"strings"
)

// ParseFilename derives the logical file name of a reference: its base name
// with every dot removed from the name part, re-joined with the extension.
// Downstream storage rejects dots inside base names, so "a.b.c.png" becomes
// "abc.png". References without an extension keep their dot-free base name.
func ParseFilename(ref string) string {
	base := path.Base(refPath(ref))
	ext := path.Ext(base)
	name := strings.ReplaceAll(strings.TrimSuffix(base, ext), ".", "")
	if len(ext) <= 1 {
		return name
	}
	return name + ext
}

// HasExtension reports whether the reference names a file with an extension.
func HasExtension(ref string) bool {
	if strings.TrimSpace(ref) == "" {
		return false
	}
	return len(path.Ext(path.Base(refPath(ref)))) > 1
}

// IsRemote reports whether the reference is an HTTP(S) URL.
func IsRemote(ref string) bool {
	lower := strings.ToLower(strings.TrimSpace(ref))
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// JoinBase joins a base directory and a relative reference, normalizing the
// slashes between them.
func JoinBase(base, ref string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(ref, "/")
}

// ResolveUnder joins ref onto base and cleans the result. It reports false
// when the cleaned path leaves base, e.g. through ".." segments.
func ResolveUnder(base, ref string) (string, bool) {
	root := path.Clean(base)
	file := path.Clean(JoinBase(root, ref))
	switch {
	case root == "/":
		return file, true
	case root == ".":
		return file, file != ".." && !strings.HasPrefix(file, "../") && !path.IsAbs(file)
	default:
		return file, file != root && strings.HasPrefix(file, root+"/")
	}
}

// refPath returns the path component used for name and extension detection.
// Query strings and fragments of URLs are ignored.
func refPath(ref string) string {
	if !IsRemote(ref) {
		return ref
	}
	u, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return ref
	}
	return u.Path
}
