package hashing

const (
	// FNVOffsetBasis is the 32-bit FNV offset basis a Mixer starts from.
	FNVOffsetBasis uint32 = 2166136261

	// FNVPrime is the 32-bit FNV prime a Mixer multiplies by for every field.
	FNVPrime uint32 = 16777619
)

// Mixer combines already-hashed fields into a single 32-bit hash using the
// FNV-1a recurrence, one field at a time instead of one byte at a time:
//
//	h = FNVOffsetBasis
//	h = (h * FNVPrime) ^ field   // for each field, in order
//
// Arithmetic wraps modulo 2^32. The result depends on field order.
type Mixer struct {
	sum uint32
}

// NewMixer returns a Mixer seeded with FNVOffsetBasis.
func NewMixer() *Mixer {
	return &Mixer{sum: FNVOffsetBasis}
}

// Add mixes one field hash in and returns the Mixer for chaining.
func (m *Mixer) Add(field uint32) *Mixer {
	m.sum = (m.sum * FNVPrime) ^ field

	return m
}

// AddString mixes in the String32 hash of s.
func (m *Mixer) AddString(s string) *Mixer {
	return m.Add(String32(s))
}

// Sum32 returns the current hash.
func (m *Mixer) Sum32() uint32 {
	return m.sum
}
