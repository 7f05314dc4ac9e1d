package mem

// Heap is an open mapping from arbitrary comparable keys to arbitrary
// values. The engine imposes no schema; layout is entirely at the
// discretion of executor callbacks.
type Heap map[any]any

func (h Heap) Get(key any) (value any, ok bool) {
	value, ok = h[key]
	return
}

func (h Heap) Set(key any, value any) {
	h[key] = value
}

func (h Heap) Delete(key any) {
	delete(h, key)
}

func (h Heap) Len() int {
	return len(h)
}

func (h Heap) Reset() {
	clear(h)
}
