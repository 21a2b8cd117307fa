// Package preset stores named mask sets on disk so decode requests can refer to them by name.
package preset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/anisan-cli/anidb/mask"
	"github.com/samber/lo"
)

// ErrNoName is returned when saving a preset without a name.
var ErrNoName = errors.New("preset: name is empty")

// Preset is a named set of masks for one record kind.
type Preset struct {
	Name  string   `json:"name"`
	Kind  string   `json:"kind"`
	Masks []string `json:"masks"`
}

// New creates a preset from masks in wire order.
func New(name, kind string, masks ...mask.Mask) *Preset {
	return &Preset{
		Name:  sanitize(name),
		Kind:  kind,
		Masks: lo.Map(masks, func(m mask.Mask, _ int) string { return m.Hex() }),
	}
}

// Parse reads the stored masks back against the tables of the preset kind.
func (p *Preset) Parse(tables ...*mask.Table) ([]mask.Mask, error) {
	if len(tables) != len(p.Masks) {
		return nil, fmt.Errorf("preset %s: %s takes %d masks, preset has %d", p.Name, p.Kind, len(tables), len(p.Masks))
	}

	masks := make([]mask.Mask, len(tables))
	for i, t := range tables {
		m, err := t.Parse(p.Masks[i])
		if err != nil {
			return nil, fmt.Errorf("preset %s: %w", p.Name, err)
		}
		masks[i] = m
	}

	return masks, nil
}

func (p *Preset) String() string {
	return fmt.Sprintf("%s (%s %s)", p.Name, p.Kind, strings.Join(p.Masks, " "))
}

func sanitize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
