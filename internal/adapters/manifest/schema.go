package manifest

// runtimeAssetType is the runtimeTargets asset type eligible for generation.
const runtimeAssetType = "runtime"

// depsFile mirrors the on-disk structure of a deps.json dependency manifest.
type depsFile struct {
	RuntimeTarget runtimeTargetDTO                   `json:"runtimeTarget"`
	Targets       map[string]map[string]targetLibDTO `json:"targets"`
	Libraries     map[string]libraryDTO              `json:"libraries"`
	Runtimes      map[string][]string                `json:"runtimes"`
}

// runtimeTargetDTO names the manifest's runtime target. For self-contained
// applications the name carries the runtime identifier after a slash.
type runtimeTargetDTO struct {
	Name string `json:"name"`
}

// targetLibDTO is one "Name/Version" entry inside a target section.
type targetLibDTO struct {
	Runtime        map[string]assetDTO        `json:"runtime"`
	RuntimeTargets map[string]runtimeAssetDTO `json:"runtimeTargets"`
}

// assetDTO is the per-asset metadata object. Its fields (assembly and file
// versions) are irrelevant here; only the asset path keys matter.
type assetDTO struct{}

// runtimeAssetDTO is the metadata of one runtime-qualified asset.
type runtimeAssetDTO struct {
	Rid       string `json:"rid"`
	AssetType string `json:"assetType"`
}

// libraryDTO is one "Name/Version" entry of the libraries section.
type libraryDTO struct {
	Type        string `json:"type"`
	Serviceable bool   `json:"serviceable"`
	SHA512      string `json:"sha512"`
}

// runtimeConfigFile mirrors the on-disk structure of a runtimeconfig.json file.
type runtimeConfigFile struct {
	RuntimeOptions runtimeOptionsDTO `json:"runtimeOptions"`
}

type runtimeOptionsDTO struct {
	Framework *frameworkDTO `json:"framework"`
}

type frameworkDTO struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}
