// Package shlesha is the root facade of the transliteration engine: a
// thin convenience wrapper around a process-global engine/registry
// Registry, seeded with the 19 built-in scripts.
//
// The Registry itself is the real object; the explicit *registry.Registry
// passed to every call is not replaced by this package, only wrapped.
// Callers who need more than one independent set of registered scripts
// -- tests, multi-tenant embedding -- should construct their own
// *registry.Registry via registry.NewWithBuiltins or registry.New
// directly instead of using this package.
package shlesha

import (
	"sync"

	"github.com/shlesha-go/shlesha/engine/registry"
	"github.com/shlesha-go/shlesha/engine/schema"
	"github.com/shlesha-go/shlesha/engine/tokenizer"
)

var (
	defaultOnce sync.Once
	defaultReg  *registry.Registry
	defaultErr  error
)

func defaultRegistry() (*registry.Registry, error) {
	defaultOnce.Do(func() {
		defaultReg, defaultErr = registry.NewWithBuiltins()
	})
	return defaultReg, defaultErr
}

// Transliterate converts text from the script named by from to the
// script named by to, via the default process-global registry.
func Transliterate(text, from, to string, opts ...tokenizer.Option) (string, error) {
	r, err := defaultRegistry()
	if err != nil {
		return "", err
	}
	return r.Transliterate(text, from, to, opts...)
}

// TransliterateWithMetadata is Transliterate plus the positioned
// unknown-fragment diagnostics.
func TransliterateWithMetadata(text, from, to string, opts ...tokenizer.Option) (registry.Result, error) {
	r, err := defaultRegistry()
	if err != nil {
		return registry.Result{}, err
	}
	return r.TransliterateWithMetadata(text, from, to, opts...)
}

// RegisterSchema adds or replaces a script definition in the default
// registry.
func RegisterSchema(s *schema.Schema) error {
	r, err := defaultRegistry()
	if err != nil {
		return err
	}
	return r.RegisterSchema(s)
}

// RemoveSchema unregisters a script (and its aliases) from the default
// registry. Removing a script that is not registered is not an error.
func RemoveSchema(name string) error {
	r, err := defaultRegistry()
	if err != nil {
		return err
	}
	return r.RemoveSchema(name)
}

// SupportedScripts lists the canonical names currently registered in
// the default registry.
func SupportedScripts() ([]string, error) {
	r, err := defaultRegistry()
	if err != nil {
		return nil, err
	}
	return r.SupportedScripts(), nil
}

// SupportsScript reports whether name (a canonical name or an alias) is
// registered in the default registry.
func SupportsScript(name string) (bool, error) {
	r, err := defaultRegistry()
	if err != nil {
		return false, err
	}
	return r.SupportsScript(name), nil
}
