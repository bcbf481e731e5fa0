package memory

import (
	"context"
	"sync"
)

// Vault is an in-process implementation of domain.SessionVault: one string
// slot guarded by a mutex. Used in demo mode and in tests.
type Vault struct {
	mu    sync.RWMutex
	value string
	set   bool
}

// NewVault creates an empty in-memory vault.
func NewVault() *Vault {
	return &Vault{}
}

func (v *Vault) Load(ctx context.Context) (string, bool, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.value, v.set, nil
}

func (v *Vault) Save(ctx context.Context, value string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.value = value
	v.set = true
	return nil
}

func (v *Vault) Clear(ctx context.Context) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.value = ""
	v.set = false
	return nil
}
