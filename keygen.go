package cachecheck

import (
	"io"

	"github.com/google/uuid"
)

// DefaultKeyPrefix namespaces generated probe keys.
const DefaultKeyPrefix = "oat-health-check"

// KeyGenerator returns a value never handed out before for each call.
// Must be safe for concurrent use.
type KeyGenerator interface {
	Generate() (string, error)
}

// KeyGeneratorFunc adapts a function to KeyGenerator.
type KeyGeneratorFunc func() (string, error)

func (f KeyGeneratorFunc) Generate() (string, error) { return f() }

// UUIDKeyGenerator produces "<prefix>-<random v4 uuid>".
type UUIDKeyGenerator struct {
	prefix string
	rand   io.Reader // nil => crypto/rand via uuid
}

var _ KeyGenerator = (*UUIDKeyGenerator)(nil)

// NewUUIDKeyGenerator uses DefaultKeyPrefix when prefix is empty.
func NewUUIDKeyGenerator(prefix string) *UUIDKeyGenerator {
	return &UUIDKeyGenerator{prefix: coalesce(prefix, DefaultKeyPrefix)}
}

// NewUUIDKeyGeneratorFromReader draws the uuid bytes from r instead of
// crypto/rand. r must not be shared with other goroutines unless it is safe
// for concurrent reads.
func NewUUIDKeyGeneratorFromReader(prefix string, r io.Reader) *UUIDKeyGenerator {
	g := NewUUIDKeyGenerator(prefix)
	g.rand = r
	return g
}

func (g *UUIDKeyGenerator) Prefix() string { return g.prefix }

func (g *UUIDKeyGenerator) Generate() (string, error) {
	var (
		id  uuid.UUID
		err error
	)
	if g.rand != nil {
		id, err = uuid.NewRandomFromReader(g.rand)
	} else {
		id, err = uuid.NewRandom()
	}
	if err != nil {
		return "", err
	}
	return g.prefix + "-" + id.String(), nil
}
