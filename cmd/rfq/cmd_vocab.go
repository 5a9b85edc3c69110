package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"rfq-engine/internal/vocab"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Print the categorical vocabularies as YAML",
	Long: `Prints every categorical field's ordered substring rules, canonical
tags, and default. Useful when auditing why free text normalized to a
particular tag.`,
	RunE: runVocab,
}

func runVocab(cmd *cobra.Command, args []string) error {
	out, err := yaml.Marshal(vocab.Vocabularies())
	if err != nil {
		return fmt.Errorf("failed to marshal vocabularies: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), string(out))

	return nil
}
