package models

import (
	"errors"
	"math/rand"
)

// ErrEmptyPool is returned when a pool is constructed without any credentials
var ErrEmptyPool = errors.New("credential pool is empty")

// CredentialPool is an immutable set of interchangeable API secrets.
// Selection is uniform random with replacement, no coordination across
// requests.
type CredentialPool struct {
	creds []string
}

func NewCredentialPool(creds []string) (*CredentialPool, error) {
	if len(creds) == 0 {
		return nil, ErrEmptyPool
	}

	copied := make([]string, len(creds))
	copy(copied, creds)

	return &CredentialPool{creds: copied}, nil
}

// Pick returns a uniformly random credential
func (p *CredentialPool) Pick() string {
	return p.creds[rand.Intn(len(p.creds))]
}

// PickWith returns a uniformly random credential drawn from the given source
func (p *CredentialPool) PickWith(r *rand.Rand) string {
	return p.creds[r.Intn(len(p.creds))]
}

// All returns a copy of every credential in the pool
func (p *CredentialPool) All() []string {
	copied := make([]string, len(p.creds))
	copy(copied, p.creds)
	return copied
}

// Size returns the number of credentials in the pool
func (p *CredentialPool) Size() int {
	return len(p.creds)
}
