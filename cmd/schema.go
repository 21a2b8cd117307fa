// Package cmd implements the anidb command-line interface.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/anisan-cli/anidb/mask"
	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)

	addKindFlag(schemaCmd)
	schemaCmd.SetOut(os.Stdout)
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the records decode --json produces",
	Run: func(cmd *cobra.Command, args []string) {
		k, err := kindFromFlags(cmd)
		handleErr(err)

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(recordSchema(k)))
	},
}

// recordSchema describes a record of k. Fields are null when their bit was not set.
func recordSchema(k *recordKind) *jsonschema.Schema {
	props := jsonschema.NewProperties()

	var required []string
	for _, f := range k.fixed {
		props.Set(f.ID, fieldSchema(f))
		required = append(required, f.ID)
	}

	for _, t := range k.tables {
		for _, f := range t.Fields() {
			s := fieldSchema(f)
			props.Set(f.ID, &jsonschema.Schema{
				AnyOf:       []*jsonschema.Schema{s, {Type: "null"}},
				Description: fmt.Sprintf("%s bit %d, null when not requested", t.Name(), f.Bit),
			})
		}
	}

	return &jsonschema.Schema{
		Version:              jsonschema.Version,
		Title:                k.name,
		Type:                 "object",
		Properties:           props,
		Required:             required,
		AdditionalProperties: jsonschema.FalseSchema,
	}
}

func fieldSchema(f mask.Field) *jsonschema.Schema {
	switch f.Type {
	case mask.Int:
		return &jsonschema.Schema{Type: "integer"}
	case mask.Bool:
		return &jsonschema.Schema{Type: "boolean"}
	case mask.List:
		return &jsonschema.Schema{Type: "array", Items: &jsonschema.Schema{Type: "string"}}
	case mask.IntList:
		return &jsonschema.Schema{Type: "array", Items: &jsonschema.Schema{Type: "integer"}}
	default:
		return &jsonschema.Schema{Type: "string"}
	}
}
