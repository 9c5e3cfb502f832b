// Package match implements the two node-correspondence strategies that sit
// between the comparison-graph builder and diff assembly: an exhaustive
// enumerator for small inputs and a greedy heuristic for everything else,
// plus the scoring machinery both share.
package match

import "sort"

// Mapping is a partial injective function from graph-1 atom ids to graph-2
// atom ids.
type Mapping map[string]string

func cloneMapping(m Mapping) Mapping {
	out := make(Mapping, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// merge returns a new mapping combining base and add, or ok=false if doing
// so would violate injectivity (a repeated key mapped to a different value,
// or two keys mapped to the same value).
func merge(base, add Mapping) (Mapping, bool) {
	out := cloneMapping(base)
	values := make(map[string]struct{}, len(out))
	for _, v := range out {
		values[v] = struct{}{}
	}
	for k, v := range add {
		if existing, ok := out[k]; ok {
			if existing != v {
				return nil, false
			}
			continue
		}
		if _, taken := values[v]; taken {
			return nil, false
		}
		out[k] = v
		values[v] = struct{}{}
	}
	return out, true
}

// serialize produces a canonical string key for a mapping, for use as a
// cache key: sorted "k=v" pairs joined by a separator that cannot appear in
// an id (atom ids are built from statechart ids, which never contain '\x1f').
func serialize(m Mapping) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]byte, 0, 16*len(keys))
	for _, k := range keys {
		out = append(out, k...)
		out = append(out, '=')
		out = append(out, m[k]...)
		out = append(out, '\x1f')
	}
	return string(out)
}
