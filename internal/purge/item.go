package purge

// Kind distinguishes folder matches from file matches.
type Kind int

const (
	KindFolder Kind = iota
	KindFile
)

func (k Kind) String() string {
	if k == KindFolder {
		return "Folder"
	}
	return "File"
}

// MarshalText renders the kind as "Folder" or "File".
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// FoundItem is one scan result eligible for deletion.
type FoundItem struct {
	Path     string `json:"path"`
	RelPath  string `json:"relative_path"`
	Kind     Kind   `json:"kind"`
	Size     int64  `json:"size"`
	Selected bool   `json:"selected"`
}

// IsFolder reports whether the item is a directory match.
func (i FoundItem) IsFolder() bool {
	return i.Kind == KindFolder
}
