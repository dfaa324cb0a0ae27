package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-compendium/internal/pkg/jsonv"
	"github.com/KirkDiggler/rpg-compendium/internal/render"
	"github.com/KirkDiggler/rpg-compendium/internal/render/terminal"
)

var (
	renderFile   string
	renderType   string
	renderJSON   bool
	renderExpand bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render an entity file to the terminal",
	Long: `Render a local JSON file. The file is either an entity
({"entity_type": ..., "entity_data": {...}}) or a bare data object, in which
case --type selects the layout. Use --file - to read stdin.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderFile, "file", "f", "", "entity JSON file (- for stdin)")
	renderCmd.Flags().StringVarP(&renderType, "type", "t", "", "entity type, overrides the file's entity_type")
	renderCmd.Flags().BoolVar(&renderJSON, "json", false, "print the fragment tree as JSON")
	renderCmd.Flags().BoolVar(&renderExpand, "expand", false, "open raw JSON views")
	_ = renderCmd.MarkFlagRequired("file")
}

func runRender(cmd *cobra.Command, _ []string) error {
	raw, err := readInput(cmd, renderFile)
	if err != nil {
		return err
	}

	entityType, data, err := splitEntity(raw, renderType)
	if err != nil {
		return err
	}

	node := render.Render(entityType, data, render.WithExpandRaw(renderExpand))

	out := cmd.OutOrStdout()
	if renderJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(node)
	}

	_, err = fmt.Fprintln(out, terminal.Render(node))
	return err
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// splitEntity accepts either an entity document or a bare data object
func splitEntity(raw []byte, typeOverride string) (string, *jsonv.Object, error) {
	doc, err := jsonv.ParseObject(raw)
	if err != nil {
		return "", nil, fmt.Errorf("failed to parse entity: %w", err)
	}

	entityType := typeOverride
	data := doc

	if v, ok := doc.Lookup("entity_data"); ok {
		if obj, ok := jsonv.AsObject(v); ok {
			data = obj
			if entityType == "" {
				if t, ok := doc.Lookup("entity_type"); ok {
					entityType, _ = jsonv.AsString(t)
				}
			}
		}
	}

	if entityType == "" {
		return "", nil, fmt.Errorf("entity type is required: set entity_type in the file or pass --type")
	}
	return entityType, data, nil
}
