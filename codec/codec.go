// Package codec turns pool values into provider bytes and back.
// ProviderPool works on Codec[string]; the generic forms serve callers that
// store richer probe payloads.
package codec

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
