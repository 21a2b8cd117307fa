// Package cmd implements the anidb command-line interface.
package cmd

import (
	"fmt"
	"slices"

	"github.com/anisan-cli/anidb/anime"
	"github.com/anisan-cli/anidb/codec"
	"github.com/anisan-cli/anidb/config"
	"github.com/anisan-cli/anidb/file"
	"github.com/anisan-cli/anidb/key"
	"github.com/anisan-cli/anidb/mask"
	"github.com/anisan-cli/anidb/preset"
	"github.com/anisan-cli/anidb/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// decoded is a codec.Result with the record type erased.
type decoded struct {
	Tag   string        `json:"tag,omitempty"`
	Code  int           `json:"code"`
	Name  string        `json:"name"`
	Lines []decodedLine `json:"lines"`
}

type decodedLine struct {
	Record any    `json:"record,omitempty"`
	Err    error  `json:"-"`
	Error  string `json:"error,omitempty"`
}

// recordKind binds a codec kind to the CLI.
type recordKind struct {
	name     string
	fixed    []mask.Field
	tables   []*mask.Table
	defaults []string
	decode   func(opts codec.Options, payload []byte, masks []mask.Mask) (*decoded, error)
}

func decoder[T any](kind codec.Kind[T]) func(codec.Options, []byte, []mask.Mask) (*decoded, error) {
	return func(opts codec.Options, payload []byte, masks []mask.Mask) (*decoded, error) {
		result, err := codec.DecodeWith(opts, payload, kind, masks...)
		if err != nil {
			return nil, err
		}

		return &decoded{
			Tag:  result.Tag,
			Code: result.Code,
			Name: result.Name,
			Lines: lo.Map(result.Lines, func(line codec.Line[T], _ int) decodedLine {
				if line.Err != nil {
					return decodedLine{Err: line.Err, Error: line.Err.Error()}
				}
				return decodedLine{Record: line.Record}
			}),
		}, nil
	}
}

var kinds = []*recordKind{
	{
		name:     anime.Kind.Name,
		tables:   anime.Kind.Tables,
		defaults: []string{key.AniDBAmask},
		decode:   decoder(anime.Kind),
	},
	{
		name:     file.Kind.Name,
		fixed:    file.Kind.Fixed,
		tables:   file.Kind.Tables,
		defaults: []string{key.AniDBFmask, key.AniDBFileAmask},
		decode:   decoder(file.Kind),
	},
}

func kindNames() []string {
	return lo.Map(kinds, func(k *recordKind, _ int) string { return k.name })
}

func kindByName(name string) (*recordKind, error) {
	k, ok := lo.Find(kinds, func(k *recordKind) bool { return k.name == name })
	if !ok {
		return nil, fmt.Errorf("unknown kind %s, available kinds are %v", name, kindNames())
	}
	return k, nil
}

// fields returns the fixed fields followed by every table field, in wire order.
func (k *recordKind) fields() []mask.Field {
	fields := slices.Clone(k.fixed)
	for _, t := range k.tables {
		fields = append(fields, t.Fields()...)
	}
	return fields
}

// lookup finds the table holding a field identifier.
func (k *recordKind) lookup(id string) (int, mask.Field, error) {
	for i, t := range k.tables {
		if f, ok := t.Lookup(id).Get(); ok {
			return i, f, nil
		}
	}

	ids := lo.FlatMap(k.tables, func(t *mask.Table, _ int) []string { return t.IDs() })
	if closest, ok := util.Closest(id, ids).Get(); ok {
		return 0, mask.Field{}, fmt.Errorf("unknown %s field %s, did you mean %s?", k.name, id, closest)
	}
	return 0, mask.Field{}, fmt.Errorf("unknown %s field %s", k.name, id)
}

// of builds one mask per table from field identifiers.
func (k *recordKind) of(ids ...string) ([]mask.Mask, error) {
	masks := lo.Map(k.tables, func(t *mask.Table, _ int) mask.Mask { return t.Empty() })

	for _, id := range ids {
		i, f, err := k.lookup(id)
		if err != nil {
			return nil, err
		}
		masks[i] = masks[i].With(f.Bit)
	}

	return masks, nil
}

// parse reads one hex mask per table.
func (k *recordKind) parse(hexes []string) ([]mask.Mask, error) {
	if len(hexes) != len(k.tables) {
		return nil, fmt.Errorf("%s takes %s, got %d", k.name, util.Quantify(len(k.tables), "mask", "masks"), len(hexes))
	}

	masks := make([]mask.Mask, len(hexes))
	for i, t := range k.tables {
		m, err := t.Parse(hexes[i])
		if err != nil {
			return nil, err
		}
		masks[i] = m
	}

	return masks, nil
}

// configured returns the default masks from the config.
func (k *recordKind) configured() ([]mask.Mask, error) {
	masks := make([]mask.Mask, len(k.tables))
	for i, t := range k.tables {
		m, err := config.Mask(k.defaults[i], t)
		if err != nil {
			return nil, err
		}
		masks[i] = m
	}
	return masks, nil
}

// masksFromFlags resolves the masks of a command from --mask, --preset or the config, in that order.
func masksFromFlags(cmd *cobra.Command, k *recordKind) ([]mask.Mask, error) {
	hexes := lo.Must(cmd.Flags().GetStringSlice("mask"))
	name := lo.Must(cmd.Flags().GetString("preset"))

	switch {
	case len(hexes) > 0:
		return k.parse(hexes)
	case name != "":
		found, err := preset.Get(name)
		if err != nil {
			return nil, err
		}

		p, ok := found.Get()
		if !ok {
			return nil, errNoPreset(name)
		}

		if p.Kind != k.name {
			return nil, fmt.Errorf("preset %s is for %s records, not %s", p.Name, p.Kind, k.name)
		}

		return p.Parse(k.tables...)
	default:
		return k.configured()
	}
}

func addKindFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("kind", "k", anime.Kind.Name, "Record kind")
	lo.Must0(cmd.RegisterFlagCompletionFunc("kind", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return kindNames(), cobra.ShellCompDirectiveNoFileComp
	}))
}

func kindFromFlags(cmd *cobra.Command) (*recordKind, error) {
	return kindByName(lo.Must(cmd.Flags().GetString("kind")))
}
