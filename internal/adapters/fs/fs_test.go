package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/aot/internal/adapters/fs"
	"go.trai.ch/aot/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestCopier_CopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.dll")
	dst := filepath.Join(dir, "dst.dll")
	writeFile(t, src, "assembly bytes")

	err := fs.NewCopier().CopyFile(src, dst)
	require.NoError(t, err)

	assert.Equal(t, "assembly bytes", readFile(t, dst))
	assert.FileExists(t, src, "copy must not remove the source")
}

func TestCopier_CopyFile_TruncatesExisting(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.dll")
	dst := filepath.Join(dir, "dst.dll")
	writeFile(t, src, "new")
	writeFile(t, dst, "previous longer content")

	err := fs.NewCopier().CopyFile(src, dst)
	require.NoError(t, err)

	assert.Equal(t, "new", readFile(t, dst))
}

func TestCopier_CopyFile_MissingSource(t *testing.T) {
	dir := t.TempDir()

	err := fs.NewCopier().CopyFile(filepath.Join(dir, "absent"), filepath.Join(dir, "dst"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to copy application file")
}

func TestCopier_MirrorTree(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	writeFile(t, filepath.Join(src, "App.dll"), "app")
	writeFile(t, filepath.Join(src, "App.deps.json"), "{}")
	writeFile(t, filepath.Join(src, "runtimes", "linux", "native", "libuv.so"), "native")

	err := fs.NewCopier().MirrorTree(src, dst, nil)
	require.NoError(t, err)

	hasher := fs.NewHasher()
	srcHash, err := hasher.ComputeTreeHash(src)
	require.NoError(t, err)
	dstHash, err := hasher.ComputeTreeHash(dst)
	require.NoError(t, err)
	assert.Equal(t, srcHash, dstHash, "mirrored tree must be byte-identical")
}

func TestCopier_MirrorTree_SkipPredicate(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	writeFile(t, filepath.Join(src, "keep.dll"), "keep")
	writeFile(t, filepath.Join(src, "sub", "generated.dll"), "generated")

	err := fs.NewCopier().MirrorTree(src, dst, func(rel string) bool {
		return rel == "sub/generated.dll"
	})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dst, "keep.dll"))
	assert.NoFileExists(t, filepath.Join(dst, "sub", "generated.dll"))
}

func TestCopier_MirrorTree_PreservesExistingDestination(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	writeFile(t, filepath.Join(src, "App.dll"), "source version")
	writeFile(t, filepath.Join(dst, "App.dll"), "destination version")

	err := fs.NewCopier().MirrorTree(src, dst, nil)
	require.NoError(t, err)

	assert.Equal(t, "destination version", readFile(t, filepath.Join(dst, "App.dll")))
}

func TestMover_MoveFile(t *testing.T) {
	lg := mocks.NewMockLogger(gomock.NewController(t))

	dir := t.TempDir()
	src := filepath.Join(dir, "staged.dll")
	dst := filepath.Join(dir, "final.dll")
	writeFile(t, src, "image")

	err := fs.NewMover(lg).MoveFile(src, dst)
	require.NoError(t, err)

	assert.Equal(t, "image", readFile(t, dst))
	assert.NoFileExists(t, src, "move must not leave the source behind")
}

func TestMover_MoveFile_ReplacesExisting(t *testing.T) {
	lg := mocks.NewMockLogger(gomock.NewController(t))
	lg.EXPECT().Info(gomock.Any()).Times(1)

	dir := t.TempDir()
	src := filepath.Join(dir, "staged.dll")
	dst := filepath.Join(dir, "final.dll")
	writeFile(t, src, "new image")
	writeFile(t, dst, "old image")

	err := fs.NewMover(lg).MoveFile(src, dst)
	require.NoError(t, err)

	assert.Equal(t, "new image", readFile(t, dst))
}

func TestMover_MoveFile_CreatesDestinationDir(t *testing.T) {
	lg := mocks.NewMockLogger(gomock.NewController(t))

	dir := t.TempDir()
	src := filepath.Join(dir, "staged.dll")
	dst := filepath.Join(dir, "x64", "Foo", "1.0.0", "Foo.dll")
	writeFile(t, src, "image")

	err := fs.NewMover(lg).MoveFile(src, dst)
	require.NoError(t, err)
	assert.FileExists(t, dst)
}

func TestHasher_ComputeFileHash(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	c := filepath.Join(dir, "c")
	writeFile(t, a, "same content")
	writeFile(t, b, "same content")
	writeFile(t, c, "different content")

	hasher := fs.NewHasher()

	hashA, err := hasher.ComputeFileHash(a)
	require.NoError(t, err)
	hashB, err := hasher.ComputeFileHash(b)
	require.NoError(t, err)
	hashC, err := hasher.ComputeFileHash(c)
	require.NoError(t, err)

	assert.Equal(t, hashA, hashB)
	assert.NotEqual(t, hashA, hashC)
}

func TestHasher_ComputeFileHash_Missing(t *testing.T) {
	_, err := fs.NewHasher().ComputeFileHash(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to hash file content")
}

func TestHasher_ComputeTreeHash(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	third := t.TempDir()
	for _, root := range []string{first, second, third} {
		writeFile(t, filepath.Join(root, "App.dll"), "app")
		writeFile(t, filepath.Join(root, "sub", "lib.dll"), "lib")
	}
	writeFile(t, filepath.Join(third, "sub", "lib.dll"), "lib changed")

	hasher := fs.NewHasher()

	firstHash, err := hasher.ComputeTreeHash(first)
	require.NoError(t, err)
	secondHash, err := hasher.ComputeTreeHash(second)
	require.NoError(t, err)
	thirdHash, err := hasher.ComputeTreeHash(third)
	require.NoError(t, err)

	assert.Equal(t, firstHash, secondHash, "equal trees must fingerprint equally")
	assert.NotEqual(t, firstHash, thirdHash, "content change must change the fingerprint")
}

func TestHasher_ComputeTreeHash_PathSensitive(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeFile(t, filepath.Join(first, "a.dll"), "x")
	writeFile(t, filepath.Join(second, "b.dll"), "x")

	hasher := fs.NewHasher()

	firstHash, err := hasher.ComputeTreeHash(first)
	require.NoError(t, err)
	secondHash, err := hasher.ComputeTreeHash(second)
	require.NoError(t, err)

	assert.NotEqual(t, firstHash, secondHash, "same bytes at a different path must fingerprint differently")
}
