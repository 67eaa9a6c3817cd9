package ports

import "go.trai.ch/aot/internal/core/domain"

// OutputStrategy decides, per library, whether to process it, where generated
// files land, and how the output tree is reconciled as processing completes.
//
//go:generate mockgen -source=strategy.go -destination=mocks/mock_strategy.go -package=mocks
type OutputStrategy interface {
	// Admit reports whether the library should be processed. For the cache
	// strategy this verifies the persisted hash stamp: a matching stamp skips
	// the library, an absent one stages a new value, and a conflict without
	// overwrite permission is an error.
	Admit(lib *domain.RuntimeLibrary) (bool, error)

	// AssetDir returns the directory the generator must write outputs to for
	// the given manifest-relative asset path, creating it if needed.
	AssetDir(lib *domain.RuntimeLibrary, assetPath string) (string, error)

	// AssetComplete relocates the files produced for one asset into their
	// final location.
	AssetComplete(lib *domain.RuntimeLibrary, asset domain.GeneratedAsset) error

	// LibraryComplete finalizes a library after one of its asset groups has
	// been processed. It may fire more than once for a library with several
	// asset groups; implementations must tolerate the repeat.
	LibraryComplete(lib *domain.RuntimeLibrary) error

	// RunComplete finalizes the output tree after every library completed.
	RunComplete() error
}
