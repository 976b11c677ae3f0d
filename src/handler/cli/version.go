package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"bigo-sim/src/model"
)

func (h *Handler) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("bigo-sim %s\n", h.cfg.Agent.Version)
		},
	}
}

func (h *Handler) tagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List complexity classes",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Complexity classes (growth order):")
			for _, tag := range model.AllTags() {
				fmt.Printf("  %-12s %-10s : %s\n", tag, tag.Display(), tag.Description())
			}
		},
	}
}
