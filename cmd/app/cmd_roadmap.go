package main

import (
	"fmt"
	"os"

	"github.com/akyairhashvil/nebula/internal/roadmap"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var pdfPath string

// roadmapCmd prints the roadmap or exports it as a PDF
var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Show the product roadmap",
	RunE: func(cmd *cobra.Command, args []string) error {
		phases := roadmap.Phases()
		if pdfPath != "" {
			if err := roadmap.ExportPDF(phases, pdfPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Roadmap written to %s\n", pdfPath)
			return nil
		}
		style, width := roadmap.StyleNoTTY, 80
		fd := int(os.Stdout.Fd())
		if term.IsTerminal(fd) {
			style = roadmap.StyleDark
			if w, _, err := term.GetSize(fd); err == nil && w > 0 {
				width = w
			}
		}
		return printRoadmap(cmd, style, width)
	},
}

func init() {
	roadmapCmd.Flags().StringVar(&pdfPath, "pdf", "", "Write the roadmap to this PDF file instead")
}

func printRoadmap(cmd *cobra.Command, style string, width int) error {
	r, err := roadmap.NewRenderer(style, width)
	if err != nil {
		return err
	}
	out, err := r.Document(roadmap.Phases())
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}
