// Package domain contains the core domain models for resolving and locking definition apps.
package domain

import (
	"iter"
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ResolvedApp is the concrete package a declaration resolved to.
type ResolvedApp struct {
	// Name is the application id the record was resolved for.
	Name string `yaml:"name"`
	// Code is the version code of the resolved package.
	Code int `yaml:"code"`
	// PackageName is the artifact file name as published in the repository.
	PackageName string `yaml:"package_name"`
	// PackageURL is the absolute download URL of the artifact.
	PackageURL string `yaml:"package_url"`
}

// LockManifest maps repository apps keys to the apps resolved from that repository.
// Groups keep the order they were added in, records keep declaration order.
type LockManifest struct {
	groups *orderedmap.OrderedMap[string, []ResolvedApp]
}

// NewLockManifest creates an empty LockManifest.
func NewLockManifest() *LockManifest {
	return &LockManifest{
		groups: orderedmap.New[string, []ResolvedApp](),
	}
}

// Set replaces the records of a repository group.
func (m *LockManifest) Set(appsKey string, apps []ResolvedApp) {
	if apps == nil {
		apps = []ResolvedApp{}
	}
	m.groups.Set(appsKey, apps)
}

// Get returns the records of a repository group.
func (m *LockManifest) Get(appsKey string) ([]ResolvedApp, bool) {
	return m.groups.Get(appsKey)
}

// Keys returns the repository group keys in order.
func (m *LockManifest) Keys() []string {
	keys := make([]string, 0, m.groups.Len())
	for pair := m.groups.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Groups returns an iterator over the repository groups in order.
func (m *LockManifest) Groups() iter.Seq2[string, []ResolvedApp] {
	return func(yield func(string, []ResolvedApp) bool) {
		for pair := m.groups.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Apps returns every record across every group, groups first to last.
func (m *LockManifest) Apps() []ResolvedApp {
	var apps []ResolvedApp
	for _, group := range m.Groups() {
		apps = append(apps, group...)
	}
	return apps
}

// Len returns the number of repository groups.
func (m *LockManifest) Len() int {
	return m.groups.Len()
}

// Equal reports whether both manifests hold the same groups, in the same order,
// with the same records.
func (m *LockManifest) Equal(other *LockManifest) bool {
	if m == nil || other == nil {
		return m == other
	}
	if !slices.Equal(m.Keys(), other.Keys()) {
		return false
	}
	for key, apps := range m.Groups() {
		otherApps, _ := other.Get(key)
		if !slices.Equal(apps, otherApps) {
			return false
		}
	}
	return true
}
