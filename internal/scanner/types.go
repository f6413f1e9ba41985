package scanner

import "time"

// Kind identifies the pattern rule that produced a reference.
type Kind string

const (
	KindLoaderCall  Kind = "hf_loader_call"
	KindTabularRead Kind = "tabular_read_call"
	KindFileLiteral Kind = "file_url_literal"
	KindDatasetURL  Kind = "hf_dataset_url"
)

// Reference is a single dataset mention discovered in the scanned tree.
type Reference struct {
	Kind         Kind      `json:"kind"`
	Value        string    `json:"value"`
	OriginFile   string    `json:"origin_file"`
	DiscoveredAt time.Time `json:"discovered_at"`
}
