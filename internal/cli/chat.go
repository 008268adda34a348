package cli

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"docqa/internal/summarizer"
	"docqa/internal/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat <file|url>",
	Short: "Load a document and start an interactive chat",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// stderr would corrupt the terminal UI; only log when a file is configured
		log, closeLog, err := newLogger(currentConfig, io.Discard)
		if err != nil {
			return err
		}
		defer closeLog()

		svc, err := newService(currentConfig, log)
		if err != nil {
			return err
		}
		doc, err := svc.LoadFrom(cmd.Context(), newProvider(currentConfig), args[0])
		if err != nil {
			return err
		}

		title := fmt.Sprintf("docqa: %s (%d %s segments)", args[0], len(doc.Segments), doc.Segmentation)
		if terms := summarizer.Terms(summarizer.Keywords(doc, nil, 0)); len(terms) > 0 {
			title += " | " + strings.Join(terms, ", ")
		}
		m := tui.New(svc, title, currentConfig.Engine.HighlightOpen, currentConfig.Engine.HighlightClose)
		_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
