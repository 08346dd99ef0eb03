package ir

// LinkedSet is a group of two or more columns whose values are pairwise in
// one-to-one correspondence. Names are sorted.
type LinkedSet []string

// Report is the outcome of one linked-set analysis.
//
// LinkedCount counts distinct columns placed in any linked set, so
// LinkedCount + FreeCount == Total.
type Report struct {
	Source        string      `json:"source,omitempty" yaml:"source,omitempty"`
	Header        []string    `json:"header" yaml:"header"`
	LinkedSets    []LinkedSet `json:"linked_sets" yaml:"linked_sets"`
	FreeVariables []string    `json:"free_variables" yaml:"free_variables"`
	Total         int         `json:"total" yaml:"total"`
	LinkedCount   int         `json:"linked_count" yaml:"linked_count"`
	SetCount      int         `json:"set_count" yaml:"set_count"`
	FreeCount     int         `json:"free_count" yaml:"free_count"`
}

// RunRecord is a persisted analysis run.
// Seq is assigned by the store; runs are ordered by Seq, never by wall time.
type RunRecord struct {
	ID          string `json:"id" yaml:"id"`
	Seq         int64  `json:"seq" yaml:"seq"`
	Source      string `json:"source" yaml:"source"`
	DatasetHash string `json:"dataset_hash" yaml:"dataset_hash"`
	ReportHash  string `json:"report_hash" yaml:"report_hash"`
	Version     string `json:"version" yaml:"version"`
	Report      Report `json:"report" yaml:"report"`
}

// canonicalMap converts the report into the generic form accepted by
// MarshalCanonical. Source is excluded: the same data read from two
// locations has the same identity.
func (r *Report) canonicalMap() map[string]any {
	sets := make([]any, len(r.LinkedSets))
	for i, set := range r.LinkedSets {
		sets[i] = stringsToAny(set)
	}
	return map[string]any{
		"header":         stringsToAny(r.Header),
		"linked_sets":    sets,
		"free_variables": stringsToAny(r.FreeVariables),
		"total":          r.Total,
		"linked_count":   r.LinkedCount,
		"set_count":      r.SetCount,
		"free_count":     r.FreeCount,
	}
}

func stringsToAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
