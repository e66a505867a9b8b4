package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SebastianBuritica/interviewprep/internal/guides"
	"github.com/SebastianBuritica/interviewprep/internal/markdown"
)

var guidesCmd = &cobra.Command{
	Use:   "guides",
	Short: "List the study guide catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		if topic != "" && !guides.ValidTopic(topic) {
			return fmt.Errorf("unknown topic %q (try: %s)", topic, strings.Join(topicKeys(), ", "))
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		fsys, err := contentFS(cfg)
		if err != nil {
			return err
		}
		lib, err := guides.Load(fsys)
		if err != nil {
			return fmt.Errorf("load guides: %w", err)
		}

		var total int
		for _, t := range guides.Topics {
			if topic != "" && t.Key != topic {
				continue
			}
			entries := lib.ByTopic(t.Key)
			if len(entries) == 0 {
				continue
			}
			fmt.Println(t.Name)
			for _, g := range entries {
				fmt.Printf("  %-24s  %-44s  ~%d min\n", g.Slug, g.Title, g.EstimatedMinutes)
			}
			fmt.Println()
			total += len(entries)
		}

		fmt.Printf("%d guides\n", total)
		return nil
	},
}

var guidesShowCmd = &cobra.Command{
	Use:   "show <slug>",
	Short: "Render one guide to stdout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		fsys, err := contentFS(cfg)
		if err != nil {
			return err
		}
		lib, err := guides.Load(fsys)
		if err != nil {
			return fmt.Errorf("load guides: %w", err)
		}

		g, err := lib.Get(args[0])
		if err != nil {
			return fmt.Errorf("guide %q not found (run 'interviewprep guides' for the catalog)", args[0])
		}

		out, err := markdown.NewRenderer(cfg.Markdown.Style).Render(g.Body, guideRenderWidth)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

// guideRenderWidth wraps stdout renders at a readable column.
const guideRenderWidth = 80

func topicKeys() []string {
	keys := make([]string, 0, len(guides.Topics))
	for _, t := range guides.Topics {
		keys = append(keys, t.Key)
	}
	return keys
}

func init() {
	guidesCmd.Flags().String("topic", "", "Only list guides for one topic key")
	guidesCmd.AddCommand(guidesShowCmd)
}
