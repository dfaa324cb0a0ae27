package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-compendium/internal/orchestrators/compendium"
)

var (
	importRuleset  string
	importKind     string
	importKeys     []string
	importCategory string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import SRD records into a ruleset",
	Long: fmt.Sprintf(`Import records from the D&D 5e SRD API into the entity catalog.
Existing entities with the same source key are updated in place.

Kinds: %s`, strings.Join(compendium.ImportKinds, ", ")),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importRuleset, "ruleset", "", "ruleset ID (defaults to DEFAULT_RULESET)")
	importCmd.Flags().StringVar(&importKind, "kind", "", "record kind to import")
	importCmd.Flags().StringSliceVar(&importKeys, "keys", nil, "SRD keys to import instead of the whole list")
	importCmd.Flags().StringVar(&importCategory, "category", "", "equipment category, e.g. martial-weapons")
	_ = importCmd.MarkFlagRequired("kind")
}

func runImport(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if importRuleset == "" {
		importRuleset = cfg.DefaultRuleset
	}

	d, err := buildDeps(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer d.Close()

	output, err := d.service.ImportSRD(cmd.Context(), &compendium.ImportSRDInput{
		RulesetID: importRuleset,
		Kind:      importKind,
		Keys:      importKeys,
		Category:  importCategory,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, entity := range output.Entities {
		fmt.Fprintf(out, "%-40s %-10s %s\n", entity.ID, entity.EntityType, entity.Name)
	}
	fmt.Fprintf(out, "\n%d imported, %d updated into %s\n", output.Imported, output.Updated, importRuleset)
	return nil
}
