package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"execdeck/internal/content"
	"execdeck/internal/ui"
	"execdeck/internal/ui/textutil"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const defaultPrintWidth = 100

var (
	printSlide  int
	printAll    bool
	printWidth  int
	printHeight int
)

// printCmd renders slides to stdout without the interactive program.
var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Render slides to stdout",
	Long: `Renders slides with the same renderers as the interactive deck and writes
them to stdout. Without --slide every slide is printed.

Example:
  execdeck print --slide 14 --width 120`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		width := printWidth
		if !cmd.Flags().Changed("width") {
			width = terminalWidth()
		}
		return printSlides(cmd.OutOrStdout(), current, width)
	},
}

// listCmd prints the slide index.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List slides in presentation order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		listSlides(cmd.OutOrStdout(), current.deck)
		return nil
	},
}

func init() {
	printCmd.Flags().IntVar(&printSlide, "slide", 0, "1-based slide number to print")
	printCmd.Flags().BoolVar(&printAll, "all", false, "print every slide (default when --slide is not set)")
	printCmd.Flags().IntVar(&printWidth, "width", defaultPrintWidth, "render width in columns (default: terminal width)")
	printCmd.Flags().IntVar(&printHeight, "height", 30, "render height for centred slides")
	printCmd.MarkFlagsMutuallyExclusive("slide", "all")
}

// terminalWidth returns the stdout width when it is a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultPrintWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return defaultPrintWidth
	}
	return w
}

func printSlides(out io.Writer, s *session, width int) error {
	slides := s.deck.Slides
	if printSlide != 0 {
		if printSlide < 1 || printSlide > len(slides) {
			return fmt.Errorf("--slide %d out of range 1-%d", printSlide, len(slides))
		}
		slides = slides[printSlide-1 : printSlide]
	}
	env := s.env
	env.Reveal = false
	for i, slide := range slides {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, ui.Styles.Muted.Render(strings.Repeat("─", width)))
		fmt.Fprintln(out, ui.RenderSlide(slide, env, width, printHeight))
	}
	return nil
}

func listSlides(out io.Writer, deck *content.Deck) {
	keyWidth := 0
	for _, s := range deck.Slides {
		keyWidth = max(keyWidth, textutil.VisualWidth(s.Key))
	}
	for i, s := range deck.Slides {
		fmt.Fprintf(out, "%2d  %s  %-14s  %s\n",
			i+1, textutil.PadRightVisual(s.Key, keyWidth), s.Kind, s.Title)
	}
}
