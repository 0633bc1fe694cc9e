package cleaner

import (
	"sort"

	"github.com/samadhiBot/messenger-cleanup/pkg/scan"
)

// Report contains the outcome of one analysis pass over the target file.
type Report struct {
	ProjectRoot     string                  `json:"project_root"`
	TargetFile      string                  `json:"target_file"`
	TotalFunctions  int                     `json:"total_functions"`
	UsedFunctions   []string                `json:"used_functions"`
	UnusedFunctions []string                `json:"unused_functions"`
	Usages          map[string][]scan.Usage `json:"usages,omitempty"`
}

// KeepSet returns the sorted names of the functions that survive
// regeneration: every function, or only the used ones.
func (r *Report) KeepSet(removeUnused bool) []string {
	keep := make([]string, 0, r.TotalFunctions)
	keep = append(keep, r.UsedFunctions...)
	if !removeUnused {
		keep = append(keep, r.UnusedFunctions...)
	}
	sort.Strings(keep)
	return keep
}
