package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/PolarWolf314/mpw/internal/algorithm"
	"github.com/PolarWolf314/mpw/internal/utils"
)

var classesCmd = &cobra.Command{
	Use:   "classes",
	Short: "List the password types",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(formatClasses())
	},
}

func formatClasses() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", utils.PadRight("TYPE", 23), "LENGTH")
	for _, class := range algorithm.Classes() {
		lengths := class.TemplateLengths()
		parts := make([]string, len(lengths))
		for i, n := range lengths {
			parts[i] = strconv.Itoa(n)
		}
		line := utils.PadRight(class.String(), 23) + "  " + strings.Join(parts, ", ")
		if class == algorithm.DefaultClass {
			line += " (default)"
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
