package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"rfq-engine/internal/resolve"
	"rfq-engine/internal/schema"
)

var (
	resolveFile  string
	aliasFile    string
	dumpMappings bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Merge a JSON file of field mappings into a request object",
	Long: `Reads extraction records (field, value, confidence, provenance) from a
JSON file, resolves them against the request schema, and prints the merged
request object as YAML. Unresolvable records are logged and skipped; the
batch never fails.

Example:
  rfq resolve -f mappings.json
  rfq resolve -f mappings.json --aliases overrides.yaml --dump`,
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVarP(&resolveFile, "file", "f", "", "JSON file of field mappings (required)")
	resolveCmd.Flags().StringVar(&aliasFile, "aliases", "", "YAML file of legacy-name alias overrides")
	resolveCmd.Flags().BoolVar(&dumpMappings, "dump", false, "dump decoded mappings before resolving")
	_ = resolveCmd.MarkFlagRequired("file")
}

func runResolve(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(resolveFile)
	if err != nil {
		return fmt.Errorf("failed to read mappings file %s: %w", resolveFile, err)
	}

	var mappings []resolve.Mapping
	if err := json.Unmarshal(data, &mappings); err != nil {
		return fmt.Errorf("failed to parse mappings JSON: %w", err)
	}

	if dumpMappings {
		spew.Fdump(os.Stderr, mappings)
	}

	table := schema.Default()

	if aliasFile != "" {
		af, err := schema.LoadAliases(aliasFile)
		if err != nil {
			return err
		}

		table.AddAliases(af.Aliases)
	}

	resolver := resolve.NewResolver(table, logger)
	result, diags := resolver.Resolve(mappings)

	logger.Info("resolved mapping batch",
		zap.Int("records", len(mappings)),
		zap.Int("warnings", len(diags.Warnings)),
		zap.Int("skipped", len(diags.Infos)))

	out, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal request object: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), string(out))

	return nil
}
