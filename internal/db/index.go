package db

// Index storage types.
const (
	StorageHash = "HASH"
)

// Index field types.
const (
	IndexFieldText    = "text"
	IndexFieldTag     = "tag"
	IndexFieldNumeric = "numeric"
)

// IndexDefinition describes an FT index over key-prefixed hashes.
type IndexDefinition struct {
	Name        string
	StorageType string
	Prefixes    []string
	Fields      []IndexField
}

// IndexField is one schema entry of an index definition.
type IndexField struct {
	Name         string
	Type         string
	TagSeparator string
	Sortable     bool
}

// IndexInfo is the subset of FT.INFO the application depends on.
type IndexInfo struct {
	NumDocs        int64
	Indexing       bool
	PercentIndexed float64
}
