package github

// Repo is the subset of repository metadata the summarizer uses.
type Repo struct {
	FullName      string   `json:"full_name"`
	Description   string   `json:"description"`
	DefaultBranch string   `json:"default_branch"`
	Homepage      string   `json:"homepage"`
	Topics        []string `json:"topics"`
}

// TreeEntry is a single entry in a git tree listing. Type is "blob" for
// files and "tree" for directories.
type TreeEntry struct {
	Path string `json:"path"`
	Type string `json:"type"`
	Size int64  `json:"size"`
}

// FileContent is a decoded file fetched through the contents API.
type FileContent struct {
	Path string
	Data []byte
}
