package selector

// Patterns is the immutable pattern configuration consumed by the enumerator
// and the classifier. Callers that need per-request overrides construct their
// own value; nothing in this package mutates a Patterns after construction.
type Patterns struct {
	// VendorDirs are path components that mark dependency, build-output,
	// cache, virtual-environment, and version-control directories.
	VendorDirs map[string]bool
	// LockFiles are exact basenames of ecosystem lock files.
	LockFiles map[string]bool
	// BinaryExts are lowercase extensions of binary/media/archive/compiled
	// artifacts.
	BinaryExts map[string]bool
	// Manifests are exact basenames of package/dependency descriptors and
	// other key project files that form the BuildConfig tier.
	Manifests map[string]bool
	// CIFiles are exact basenames of CI pipeline definitions.
	CIFiles map[string]bool
	// SourceExts are lowercase extensions recognized as source code.
	SourceExts map[string]bool
	// DocExts are lowercase extensions recognized as documentation.
	DocExts map[string]bool
	// SourceDirs are conventional source-root path components.
	SourceDirs map[string]bool
	// TestDirs are conventional test-directory path components.
	TestDirs map[string]bool
}

// DefaultPatterns returns the stock pattern sets. The sets mirror the
// conventions of the mainstream ecosystems (npm, Python, Go, Rust, JVM).
func DefaultPatterns() Patterns {
	return Patterns{
		VendorDirs: map[string]bool{
			".git":          true,
			".idea":         true,
			".vscode":       true,
			"node_modules":  true,
			"dist":          true,
			"build":         true,
			"out":           true,
			"target":        true,
			"__pycache__":   true,
			".pytest_cache": true,
			".mypy_cache":   true,
			".ruff_cache":   true,
			".venv":         true,
			"venv":          true,
			"env":           true,
			"vendor":        true,
			".next":         true,
			".nuxt":         true,
			".cache":        true,
		},
		LockFiles: map[string]bool{
			"package-lock.json": true,
			"yarn.lock":         true,
			"pnpm-lock.yaml":    true,
			"poetry.lock":       true,
			"pdm.lock":          true,
			"pipfile.lock":      true,
			"go.sum":            true,
			"cargo.lock":        true,
			"composer.lock":     true,
			"gemfile.lock":      true,
			".ds_store":         true,
		},
		BinaryExts: map[string]bool{
			".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
			".webp": true, ".ico": true, ".svg": true,
			".pdf": true, ".zip": true, ".tar": true, ".gz": true,
			".7z": true, ".rar": true, ".jar": true,
			".exe": true, ".dll": true, ".so": true, ".dylib": true,
			".a": true, ".o": true, ".pyc": true, ".class": true,
			".wasm": true, ".bin": true,
			".mp3": true, ".mp4": true, ".mov": true, ".avi": true, ".mkv": true,
			".woff": true, ".woff2": true, ".ttf": true, ".otf": true, ".eot": true,
		},
		Manifests: map[string]bool{
			"package.json":       true,
			"pyproject.toml":     true,
			"setup.py":           true,
			"setup.cfg":          true,
			"requirements.txt":   true,
			"pipfile":            true,
			"environment.yml":    true,
			"go.mod":             true,
			"cargo.toml":         true,
			"pom.xml":            true,
			"build.gradle":       true,
			"gemfile":            true,
			"composer.json":      true,
			"tsconfig.json":      true,
			"dockerfile":         true,
			"docker-compose.yml": true,
			"compose.yml":        true,
			"makefile":           true,
			"mkdocs.yml":         true,
		},
		CIFiles: map[string]bool{
			".gitlab-ci.yml":      true,
			".travis.yml":         true,
			"jenkinsfile":         true,
			"azure-pipelines.yml": true,
		},
		SourceExts: map[string]bool{
			".py": true, ".go": true, ".rs": true,
			".js": true, ".ts": true, ".tsx": true, ".jsx": true,
			".java": true, ".kt": true, ".cs": true, ".rb": true,
			".cpp": true, ".cc": true, ".c": true, ".h": true, ".hpp": true,
			".php": true, ".swift": true, ".scala": true, ".ex": true, ".exs": true,
			".sh": true, ".bat": true, ".sql": true,
			".html": true, ".css": true,
		},
		DocExts: map[string]bool{
			".md": true, ".rst": true, ".txt": true, ".adoc": true,
		},
		SourceDirs: map[string]bool{
			"src": true, "app": true, "apps": true, "lib": true,
			"cmd": true, "internal": true, "pkg": true,
		},
		TestDirs: map[string]bool{
			"test": true, "tests": true, "__tests__": true, "spec": true,
			"testdata": true,
		},
	}
}
