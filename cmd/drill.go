package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SebastianBuritica/interviewprep/internal/guides"
	"github.com/SebastianBuritica/interviewprep/internal/questiongen"
	"github.com/SebastianBuritica/interviewprep/internal/quiz"
)

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Answer questions for a topic in the plain terminal (no database)",
	Long: `Generate and interactively answer questions for a single topic.

This is a stateless preview: no events are recorded and progress is not
tracked. Questions come from the curated bank, or from the LLM with --llm.`,
	RunE: runDrill,
}

func init() {
	drillCmd.Flags().String("topic", "", "Topic key (required, e.g. react, css, javascript)")
	drillCmd.Flags().IntP("count", "n", 5, "Number of questions")
	drillCmd.Flags().Int("difficulty", 1, "Question difficulty from 1 to 3")
	drillCmd.Flags().Bool("llm", false, "Generate with the configured LLM instead of the bank")
	_ = drillCmd.MarkFlagRequired("topic")
}

func runDrill(cmd *cobra.Command, args []string) error {
	topic, _ := cmd.Flags().GetString("topic")
	count, _ := cmd.Flags().GetInt("count")
	difficulty, _ := cmd.Flags().GetInt("difficulty")
	useLLM, _ := cmd.Flags().GetBool("llm")

	if !guides.ValidTopic(topic) {
		return fmt.Errorf("unknown topic %q (try: %s)", topic, strings.Join(topicKeys(), ", "))
	}
	if difficulty < 1 || difficulty > 3 {
		return fmt.Errorf("difficulty must be 1, 2, or 3")
	}

	var gen quiz.Generator = quiz.NewBank()
	if useLLM {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		// No event repo: nothing is recorded in preview mode.
		provider, err := buildProvider(cmd.Context(), cfg, nil)
		if err != nil {
			return fmt.Errorf("LLM provider: %w", err)
		}
		gen = questiongen.New(provider, questiongen.DefaultConfig())
	}

	ctx := cmd.Context()
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Printf("Topic: %s (difficulty %d)\n", guides.TopicName(topic), difficulty)
	fmt.Printf("Generating %d questions...\n\n", count)

	var correct, answered int
	var priorQuestions []string

	for i := 1; i <= count; i++ {
		q, err := gen.Generate(ctx, quiz.GenerateInput{
			Topic:          topic,
			TopicName:      guides.TopicName(topic),
			Difficulty:     difficulty,
			PriorQuestions: priorQuestions,
		})
		if err != nil {
			fmt.Printf("Question %d: generation failed: %v\n\n", i, err)
			continue
		}
		priorQuestions = append(priorQuestions, q.Text)

		fmt.Printf("── Question %d/%d ──\n", i, count)
		fmt.Println(q.Text)
		if q.Format == quiz.FormatMultipleChoice {
			for j, c := range q.Choices {
				fmt.Printf("  %d) %s\n", j+1, c)
			}
		}

		fmt.Print("\nYour answer: ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			fmt.Print("(skipped)\n\n")
			continue
		}

		answered++
		if quiz.CheckAnswer(answer, q) {
			correct++
			fmt.Println("\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Printf("\033[31m✗ Wrong.\033[0m Answer: %s\n", q.Answer)
		}
		if q.Explanation != "" {
			fmt.Printf("Explanation: %s\n", q.Explanation)
		}
		fmt.Println()
	}

	fmt.Printf("── Summary: %d/%d correct ──\n", correct, answered)
	return nil
}
