package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"rfq-engine/internal/qtext"
)

var questionCmd = &cobra.Command{
	Use:   "question [text]",
	Short: "Parse structured lists out of question text",
	Long: `Runs the question-text parsers (attribute list, price points, point
total, product name) over the given text and prints the result as YAML.
Text is read from the argument, or from stdin when no argument is given.

Example:
  rfq question "How much would you pay for: $30, $35, $40."`,
	Args: cobra.MaximumNArgs(1),
	RunE: runQuestion,
}

// questionOutput is the YAML shape of a parsed question.
type questionOutput struct {
	Attributes  []string  `yaml:"attributes"`
	PricePoints []float64 `yaml:"price_points"`
	TotalPoints int       `yaml:"total_points"`
	ProductName string    `yaml:"product_name,omitempty"`
	Issues      []string  `yaml:"issues,omitempty"`
}

func runQuestion(cmd *cobra.Command, args []string) error {
	var text string

	if len(args) == 1 {
		text = args[0]
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read question text: %w", err)
		}

		text = strings.TrimSpace(string(data))
	}

	q := qtext.ParseQuestion(text)

	output := questionOutput{
		Attributes:  q.Attributes,
		PricePoints: q.PricePoints,
		TotalPoints: q.TotalPoints,
		ProductName: q.ProductName,
	}

	for _, issue := range qtext.ValidateAttributes(q.Attributes) {
		output.Issues = append(output.Issues, issue.Message)
	}

	out, err := yaml.Marshal(output)
	if err != nil {
		return fmt.Errorf("failed to marshal parse result: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), string(out))

	return nil
}
