// Package secret holds sensitive values such as master passwords.
package secret

import "crypto/subtle"

// Secret owns a copy of a sensitive value. Its bytes are zeroed by Release.
//
// Go strings are immutable, so the string passed to New cannot be wiped;
// callers should drop it as soon as New returns.
type Secret struct {
	b []byte
}

// New copies s into a new Secret.
func New(s string) *Secret {
	return &Secret{b: []byte(s)}
}

// Bytes returns the underlying bytes, which are only valid until Release.
func (s *Secret) Bytes() []byte {
	if s == nil {
		return nil
	}
	return s.b
}

// Len returns the length of the value in bytes.
func (s *Secret) Len() int {
	return len(s.Bytes())
}

// Equal reports whether s and other hold the same value. The comparison
// takes time independent of the contents.
func (s *Secret) Equal(other *Secret) bool {
	return subtle.ConstantTimeCompare(s.Bytes(), other.Bytes()) == 1
}

// Release zeroes the value. It is safe to call more than once.
func (s *Secret) Release() {
	if s == nil {
		return
	}
	clear(s.b)
	s.b = nil
}

// String redacts the value so it never ends up in logs.
func (s *Secret) String() string {
	return "[redacted]"
}
