package crossgen

import (
	"context"
	"os/exec"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/aot/internal/core/domain"
	"go.trai.ch/zerr"
)

// minSymbolVersion is the first generator release able to write debug
// symbols through an external writer.
var minSymbolVersion = semver.MustParse("2.0.0")

var versionPattern = regexp.MustCompile(`\d+\.\d+\.\d+(?:-[0-9A-Za-z.-]+)?`)

// checkSymbolSupport verifies the generator is recent enough to create debug
// symbols by parsing the first semantic version in its --version output.
// Some generator builds print their version and still exit non-zero, so the
// output is inspected before the run error.
func checkSymbolSupport(ctx context.Context, execPath string) error {
	cmd := exec.CommandContext(ctx, execPath, "--version") //nolint:gosec // generator path is resolved during setup
	output, runErr := cmd.CombinedOutput()

	version, parseErr := parseVersion(string(output))
	if parseErr != nil {
		if runErr != nil {
			return zerr.Wrap(runErr, domain.ErrGeneratorVersionUnknown.Error())
		}
		return parseErr
	}

	if version.LessThan(minSymbolVersion) {
		vErr := zerr.With(domain.ErrGeneratorVersionUnsupported, "version", version.String())
		return zerr.With(vErr, "minimum", minSymbolVersion.String())
	}

	return nil
}

// parseVersion extracts the first semantic version from the generator's
// version output.
func parseVersion(output string) (*semver.Version, error) {
	match := versionPattern.FindString(output)
	if match == "" {
		firstLine, _, _ := strings.Cut(strings.TrimSpace(output), "\n")
		return nil, zerr.With(domain.ErrGeneratorVersionUnknown, "output", firstLine)
	}

	version, err := semver.NewVersion(match)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrGeneratorVersionUnknown.Error())
	}

	return version, nil
}
