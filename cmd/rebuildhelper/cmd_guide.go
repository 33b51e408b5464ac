package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/jask/rebuildhelper/internal/guide"
)

func newGuideCmd(_ *rootOptions) *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "guide [query]",
		Short: "Print the AICON guide, optionally filtered",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			md := guideMarkdown(guide.New(guide.DefaultCatalog(), nil), query)
			if plain {
				_, err := io.WriteString(cmd.OutOrStdout(), md)
				return err
			}
			r, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(80),
			)
			if err != nil {
				return fmt.Errorf("markdown renderer: %w", err)
			}
			out, err := r.Render(md)
			if err != nil {
				return fmt.Errorf("render guide: %w", err)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "Print raw markdown")
	return cmd
}

func guideMarkdown(g *guide.Guide, query string) string {
	var b strings.Builder
	b.WriteString("# AICON 사용법\n\n")
	cats := g.Filter(query)
	if len(cats) == 0 {
		b.WriteString("검색 결과가 없습니다.\n")
		if s := g.Suggest(query); s != "" {
			fmt.Fprintf(&b, "\n혹시 **%s** 을(를) 찾으시나요?\n", s)
		}
		return b.String()
	}
	for _, c := range cats {
		fmt.Fprintf(&b, "## %s\n\n", c.Title)
		for _, f := range c.Functions {
			fmt.Fprintf(&b, "- **%s**: %s (%s)\n", f.Name, strings.TrimSpace(f.Description), f.Tutorial)
		}
		b.WriteString("\n")
	}
	return b.String()
}
