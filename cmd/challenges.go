package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SebastianBuritica/interviewprep/internal/challenge"
	"github.com/SebastianBuritica/interviewprep/internal/markdown"
)

var challengesCmd = &cobra.Command{
	Use:   "challenges",
	Short: "List the coding challenges and completion status",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, cfg, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		fsys, err := contentFS(cfg)
		if err != nil {
			return err
		}
		reg, err := challenge.Load(fsys)
		if err != nil {
			return fmt.Errorf("load challenges: %w", err)
		}

		completed, err := st.EventRepo().CompletedChallenges(context.Background())
		if err != nil {
			return fmt.Errorf("query completions: %w", err)
		}

		fmt.Printf("%-4s  %-32s  %-12s  %s\n", "ID", "Name", "Est. Time", "Done")
		fmt.Println(strings.Repeat("─", 60))

		for _, d := range reg.List() {
			done := ""
			if completed[d.ID] {
				done = "✓"
			}
			fmt.Printf("%-4d  %-32s  %-12s  %s\n", d.ID, d.Name, d.EstimatedTime, done)
		}

		fmt.Printf("\n%d of %d completed\n", len(completed), reg.Len())
		return nil
	},
}

var challengesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Render one challenge brief to stdout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("challenge id must be a number, got %q", args[0])
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		fsys, err := contentFS(cfg)
		if err != nil {
			return err
		}
		reg, err := challenge.Load(fsys)
		if err != nil {
			return fmt.Errorf("load challenges: %w", err)
		}

		d, err := reg.Get(id)
		if err != nil {
			return fmt.Errorf("challenge %d not found (run 'interviewprep challenges' for the list)", id)
		}

		out, err := markdown.NewRenderer(cfg.Markdown.Style).Render(d.Body, guideRenderWidth)
		if err != nil {
			return err
		}
		fmt.Printf("%s  (~%s)\n%s\n", d.Name, d.EstimatedTime, out)
		return nil
	},
}

func init() {
	challengesCmd.AddCommand(challengesShowCmd)
}
