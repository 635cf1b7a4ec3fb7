package service

import (
	"crypto/rand"
	"encoding/binary"
	"time"
)

type Clock interface {
	Now() time.Time
}

// SeedSource yields lottery seeds. Production seeds come from crypto/rand so
// draws are unpredictable; tests inject fixed seeds to make them reproducible.
type SeedSource interface {
	Seed() int64
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// SystemClock returns the wall clock in UTC.
func SystemClock() Clock { return systemClock{} }

type cryptoSeeds struct{}

func (cryptoSeeds) Seed() int64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

// CryptoSeeds returns a SeedSource backed by crypto/rand.
func CryptoSeeds() SeedSource { return cryptoSeeds{} }
