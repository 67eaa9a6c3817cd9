package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// HashAlgorithmPrefix is the only content hash algorithm tag the cache
// recognizes in manifest hash strings.
const HashAlgorithmPrefix = "sha512-"

// PackageHash is the value part of a package content hash string, with the
// algorithm tag stripped.
type PackageHash string

// ParsePackageHash parses a manifest hash string of the form "sha512-<value>".
// Any other algorithm tag is an unsupported format error.
func ParsePackageHash(s string) (PackageHash, error) {
	if !strings.HasPrefix(s, HashAlgorithmPrefix) {
		return "", zerr.With(ErrUnsupportedHashFormat, "hash", s)
	}

	return PackageHash(strings.TrimPrefix(s, HashAlgorithmPrefix)), nil
}

// CacheEntry tracks the on-disk cache state for one admitted library.
// It is computed on admission and consumed by the stamp write at library
// completion; it is never persisted beyond the stamp file itself.
type CacheEntry struct {
	// Root is the library cache directory <outputDir>/<arch>/<name>/<version>.
	Root string

	// Hash is the expected content hash extracted from the manifest.
	Hash PackageHash

	// StampPath is the hash stamp file inside Root.
	StampPath string

	// Staged reports whether Hash must be written to StampPath when the
	// library completes. Unstaged entries write nothing.
	Staged bool
}
