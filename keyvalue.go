package ordered

import "fmt"

// --- KeyValue --------------------------------------------------------------

// KeyValue is an entry of an ordered map. Ordering of key/value pairs is
// done by key only, see ByKey.
type KeyValue[K, V any] struct {
	Key   K
	Value V
}

// KV creates a key/value pair.
func KV[K, V any](k K, v V) KeyValue[K, V] {
	return KeyValue[K, V]{Key: k, Value: v}
}

// KeyOnly creates a pair with the zero value for V. Such pairs are used as
// search probes, as the value is never compared.
func KeyOnly[K, V any](k K) KeyValue[K, V] {
	return KeyValue[K, V]{Key: k}
}

// Decompose returns key and value.
func (kv KeyValue[K, V]) Decompose() (K, V) {
	return kv.Key, kv.Value
}

func (kv KeyValue[K, V]) String() string {
	return fmt.Sprintf("%v: %v", kv.Key, kv.Value)
}

// ByKey lifts a comparator for keys to a comparator for key/value pairs,
// ignoring the values.
func ByKey[K, V any](keycmp Comparator[K]) Comparator[KeyValue[K, V]] {
	return func(a, b KeyValue[K, V]) int {
		return keycmp(a.Key, b.Key)
	}
}
