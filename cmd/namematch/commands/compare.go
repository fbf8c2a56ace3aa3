package commands

import (
	"encoding/json"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/namematch/comparator"
)

// CompareCmd compares two names and prints the verdict, either as a
// pterm tree for humans or as JSON for scripting.
var CompareCmd = &cobra.Command{
	Use:   "compare <name-a> <name-b>",
	Short: "Compare two names and report whether they match",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")

		cmp, err := comparator.New(refDataDir(cmd))
		if err != nil {
			return fmt.Errorf("failed to load reference data: %w", err)
		}

		result := cmp.Compare(args[0], args[1])

		if jsonOutput {
			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to format result: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}

		printResultTree(args[0], args[1], result)
		return nil
	},
}

func init() {
	CompareCmd.Flags().BoolP("json", "j", false, "Output the full comparison result as JSON")
}

func printResultTree(nameA, nameB string, result comparator.Result) {
	verdict := pterm.Red("no match")
	if result.Match {
		verdict = pterm.Green("match")
	}
	pterm.Printf("%s vs %s: %s\n", pterm.Bold.Sprint(nameA), pterm.Bold.Sprint(nameB), verdict)

	root := pterm.TreeNode{
		Text: fmt.Sprintf("trace %s", result.TraceID),
		Children: []pterm.TreeNode{
			{Text: fmt.Sprintf("too short: %v", result.TooShort)},
			{Text: fmt.Sprintf("too generic: %v", result.TooGeneric)},
		},
	}
	root.Children = append(root.Children, attemptNodes(result)...)

	pterm.DefaultTree.WithRoot(root).Render()
}

func attemptNodes(result comparator.Result) []pterm.TreeNode {
	var nodes []pterm.TreeNode
	for i, attempt := range []*comparator.Attempt{result.Attempt1, result.Attempt2, result.Attempt3, result.Attempt4} {
		if attempt == nil {
			continue
		}
		nodes = append(nodes, pterm.TreeNode{
			Text: fmt.Sprintf("attempt %d: %q vs %q (skeleton=%v, pronounced=%v)",
				i+1, attempt.LeftRendered, attempt.RightRendered, attempt.ViaSkeleton, attempt.Pronounced),
		})
	}
	return nodes
}
