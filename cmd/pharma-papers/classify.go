// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pharma-papers/internal/affiliation"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [affiliation text]",
	Short: "Classify a single affiliation string",
	Long: `Classify runs the affiliation heuristic on one string and prints the
result: academic or non-academic, the extracted company name, and any email
address found in the text. Useful for checking how a borderline affiliation
will be treated before running a full fetch.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		email, remaining := affiliation.ExtractEmail(args[0])
		nonAcademic, company := affiliation.Classify(remaining)

		if nonAcademic {
			fmt.Println("classification: non-academic")
			if company != "" {
				fmt.Printf("company:        %s\n", company)
			} else {
				fmt.Println("company:        (not extracted)")
			}
		} else {
			fmt.Println("classification: academic")
		}
		if email != "" {
			fmt.Printf("email:          %s\n", email)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}
