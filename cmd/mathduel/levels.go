package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mathduel/internal/quiz"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List difficulty levels",
	Long:  `Shows every difficulty with its stage number and the operators it draws from.`,
	Args:  cobra.NoArgs,
	Run:   runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	levels := quiz.Difficulties()

	// Calculate column widths
	maxNameLen := len("Difficulty")
	for _, d := range levels {
		if len(d) > maxNameLen {
			maxNameLen = len(d)
		}
	}

	fmt.Println("Difficulty levels:")
	fmt.Println()

	fmt.Printf("  %-*s  %-5s  %s\n", maxNameLen, "Difficulty", "Stage", "Operators")
	fmt.Printf("  %-*s  %-5s  %s\n", maxNameLen, "----------", "-----", "---------")

	for _, d := range levels {
		ops := make([]string, 0, len(d.Operators()))
		for _, op := range d.Operators() {
			ops = append(ops, op.Symbol())
		}
		fmt.Printf("  %-*s  %-5d  %s\n", maxNameLen, d, d.Stage(), strings.Join(ops, " "))
	}

	fmt.Println()
	fmt.Println("Run 'mathduel play --difficulty <name>' to play a level.")
}
