package yamjson

// SetAtPath assigns value at the mapping-key path inside *tree, creating intermediate
// objects as needed. Any non-object found along the way, the root included, is replaced by
// an empty object. It reports false only when there is nothing to update: an empty path or
// a nil tree.
func SetAtPath(tree *any, path []string, value any) bool {
	if tree == nil || len(path) == 0 {
		return false
	}
	cur, ok := (*tree).(map[string]any)
	if !ok {
		cur = map[string]any{}
		*tree = cur
	}
	for _, k := range path[:len(path)-1] {
		next, ok := cur[k].(map[string]any)
		if !ok {
			next = map[string]any{}
			cur[k] = next
		}
		cur = next
	}
	cur[path[len(path)-1]] = value
	return true
}
