package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-compendium/internal/orchestrators/compendium"
)

var (
	rollRuleset string
	rollEntity  string
)

var rollHPCmd = &cobra.Command{
	Use:   "roll-hp",
	Short: "Roll hit points for a stored creature",
	RunE:  runRollHP,
}

func init() {
	rollHPCmd.Flags().StringVar(&rollRuleset, "ruleset", "", "ruleset ID (defaults to DEFAULT_RULESET)")
	rollHPCmd.Flags().StringVar(&rollEntity, "entity", "", "creature entity ID")
	_ = rollHPCmd.MarkFlagRequired("entity")
}

func runRollHP(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if rollRuleset == "" {
		rollRuleset = cfg.DefaultRuleset
	}

	d, err := buildDeps(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer d.Close()

	output, err := d.service.RollHitPoints(cmd.Context(), &compendium.RollHitPointsInput{
		RulesetID: rollRuleset,
		EntityID:  rollEntity,
	})
	if err != nil {
		return err
	}

	rolls := make([]string, len(output.Rolls))
	for i, r := range output.Rolls {
		rolls[i] = fmt.Sprint(r)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: [%s] => %d hit points\n",
		output.Notation, strings.Join(rolls, ", "), output.Total)
	return nil
}
