package jsonv

// DeepMerge returns a new object with overlay merged over base. Keys keep
// their position in base and keys only in overlay follow in overlay order.
// When both sides hold an object under a key the two are merged; otherwise
// the overlay value replaces the base value, arrays and null included.
// Neither input is modified, but values that are not merged are shared.
func DeepMerge(base, overlay *Object) *Object {
	out := NewObject()
	for _, m := range base.Members() {
		out.Set(m.Key, m.Value)
	}

	for _, m := range overlay.Members() {
		current, ok := out.Get(m.Key)
		if ok {
			baseObj, baseIsObj := current.(*Object)
			overObj, overIsObj := m.Value.(*Object)
			if baseIsObj && overIsObj {
				out.Set(m.Key, DeepMerge(baseObj, overObj))
				continue
			}
		}
		out.Set(m.Key, m.Value)
	}
	return out
}
