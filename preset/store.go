// Package preset stores named mask sets on disk so decode requests can refer to them by name.
package preset

import (
	"slices"
	"sync"

	"github.com/anisan-cli/anidb/filesystem"
	"github.com/anisan-cli/anidb/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

var cacher = sync.OnceValue(func() *gache.Cache[map[string]*Preset] {
	return gache.New[map[string]*Preset](&gache.Options{
		Path:       where.Presets(),
		FileSystem: &filesystem.GacheFs{},
	})
})

func load() (map[string]*Preset, error) {
	cached, expired, err := cacher().Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Preset), nil
	}
	return cached, nil
}

// Save stores p, replacing a preset of the same name.
func Save(p *Preset) error {
	if p.Name == "" {
		return ErrNoName
	}

	presets, err := load()
	if err != nil {
		return err
	}

	presets[p.Name] = p
	return cacher().Set(presets)
}

// Get returns the preset with the given name.
func Get(name string) (mo.Option[*Preset], error) {
	presets, err := load()
	if err != nil {
		return mo.None[*Preset](), err
	}

	p, ok := presets[sanitize(name)]
	if !ok {
		return mo.None[*Preset](), nil
	}
	return mo.Some(p), nil
}

// Remove deletes a preset. It reports whether the preset existed.
func Remove(name string) (bool, error) {
	presets, err := load()
	if err != nil {
		return false, err
	}

	name = sanitize(name)
	if _, ok := presets[name]; !ok {
		return false, nil
	}

	delete(presets, name)
	return true, cacher().Set(presets)
}

// List returns every preset ordered by name.
func List() ([]*Preset, error) {
	presets, err := load()
	if err != nil {
		return nil, err
	}

	list := lo.Values(presets)
	slices.SortFunc(list, func(a, b *Preset) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		}
		return 0
	})

	return list, nil
}

// Suggest returns the stored name closest to a mistyped one.
func Suggest(name string) mo.Option[string] {
	presets, err := load()
	if err != nil || len(presets) == 0 {
		return mo.None[string]()
	}

	ranks := fuzzy.RankFindFold(sanitize(name), lo.Keys(presets))
	if len(ranks) == 0 {
		return mo.None[string]()
	}

	best := lo.MinBy(ranks, func(a, b fuzzy.Rank) bool {
		return a.Distance < b.Distance || a.Distance == b.Distance && a.Target < b.Target
	})
	return mo.Some(best.Target)
}
