package domain

import "go.trai.ch/zerr"

var (
	// ErrUnsupportedFramework is returned when the resolved target framework is not the supported moniker.
	ErrUnsupportedFramework = zerr.New("unsupported target framework")

	// ErrManifestNotFound is returned when the dependency manifest does not exist.
	ErrManifestNotFound = zerr.New("dependency manifest not found")

	// ErrManifestReadFailed is returned when the dependency manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read dependency manifest")

	// ErrManifestParseFailed is returned when the dependency manifest cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse dependency manifest")

	// ErrRuntimeConfigReadFailed is returned when the runtime configuration cannot be read.
	ErrRuntimeConfigReadFailed = zerr.New("failed to read runtime configuration")

	// ErrRuntimeConfigParseFailed is returned when the runtime configuration cannot be parsed.
	ErrRuntimeConfigParseFailed = zerr.New("failed to parse runtime configuration")

	// ErrRuntimeIdentifierMissing is returned when a self-contained manifest does not declare a runtime identifier.
	ErrRuntimeIdentifierMissing = zerr.New("runtime identifier missing from dependency manifest")

	// ErrAssetNotFound is returned when an asset listed in the manifest is missing on disk.
	ErrAssetNotFound = zerr.New("expected asset not found")

	// ErrGeneratorNotConfigured is returned when no generator executable path was supplied.
	ErrGeneratorNotConfigured = zerr.New("native image generator not configured")

	// ErrGeneratorNotFound is returned when the configured generator executable does not exist.
	ErrGeneratorNotFound = zerr.New("native image generator not found")

	// ErrGeneratorVersionUnknown is returned when the generator version cannot be determined.
	ErrGeneratorVersionUnknown = zerr.New("failed to determine generator version")

	// ErrGeneratorVersionUnsupported is returned when the generator is too old to create debug symbols.
	ErrGeneratorVersionUnsupported = zerr.New("generator version does not support debug symbol generation")

	// ErrJITNotFound is returned when the JIT compiler library cannot be located.
	ErrJITNotFound = zerr.New("JIT compiler library not found")

	// ErrSymbolWriterNotFound is returned when the debug symbol writer cannot be located.
	ErrSymbolWriterNotFound = zerr.New("debug symbol writer not found")

	// ErrGenerationFailed is returned when the external generator exits non-zero.
	ErrGenerationFailed = zerr.New("native image generation failed")

	// ErrOutputMissing is returned when the generator exits zero but an expected output file is absent.
	ErrOutputMissing = zerr.New("generator produced no output")

	// ErrUnsupportedHashFormat is returned when a package hash string does not use the sha512 algorithm tag.
	ErrUnsupportedHashFormat = zerr.New("unsupported package hash format")

	// ErrHashMismatch is returned when a cached stamp differs from the manifest hash and overwrite is not permitted.
	ErrHashMismatch = zerr.New("package hash mismatch")

	// ErrStampReadFailed is returned when a hash stamp file cannot be read.
	ErrStampReadFailed = zerr.New("failed to read hash stamp")

	// ErrStampWriteFailed is returned when a hash stamp file cannot be written.
	ErrStampWriteFailed = zerr.New("failed to write hash stamp")

	// ErrOutputDirCreateFailed is returned when an output directory cannot be created.
	ErrOutputDirCreateFailed = zerr.New("failed to create output directory")

	// ErrMoveFailed is returned when a generated file cannot be moved into place.
	ErrMoveFailed = zerr.New("failed to move generated file")

	// ErrCopyFailed is returned when mirroring the application directory fails.
	ErrCopyFailed = zerr.New("failed to copy application file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrUnknownLayout is returned when the output layout selector names no known variant.
	ErrUnknownLayout = zerr.New("unknown output layout")

	// ErrConfigReadFailed is returned when the tool configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the tool configuration file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrCacheScanFailed is returned when walking a cache directory for inventory fails.
	ErrCacheScanFailed = zerr.New("failed to scan cache directory")
)
