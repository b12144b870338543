// model/merge.go
package model

// MergeIncluded resolves relationship stubs on the primary resources against
// the payload's included side table. A single stub with a matching included
// resource is attached under the relationship name; a stub list is resolved
// entry by entry with misses dropped. Stubs with no match are left untouched
// and a missing related resource never fails the merge. Resources are copied
// only when something actually resolves; untouched ones are returned as-is.
// Output order matches input order, and merging already-merged output again
// changes nothing.
func MergeIncluded(primary, included []Resource) []Resource {
	if len(primary) == 0 || len(included) == 0 {
		return primary
	}

	lookup := make(map[string]Resource, len(included))
	for _, resource := range included {
		lookup[resource.Key()] = resource
	}

	merged := make([]Resource, len(primary))
	for i, resource := range primary {
		merged[i] = resolveRelationships(resource, lookup)
	}
	return merged
}

func resolveRelationships(resource Resource, lookup map[string]Resource) Resource {
	enhanced := resource

	for name, rel := range resource.Relationships {
		if stub, ok := rel.One(); ok {
			full, found := lookup[stub.Type+":"+stub.ID]
			if !found {
				continue
			}
			enhanced = enhanced.WithExtra(name, full)
			continue
		}

		if stubs, ok := rel.Many(); ok {
			resolved := make([]Resource, 0, len(stubs))
			for _, stub := range stubs {
				if full, found := lookup[stub.Type+":"+stub.ID]; found {
					resolved = append(resolved, full)
				}
			}
			if len(resolved) > 0 {
				enhanced = enhanced.WithExtra(name, resolved)
			}
		}
	}

	return enhanced
}
