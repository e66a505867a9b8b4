package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SebastianBuritica/interviewprep/internal/guides"
	"github.com/SebastianBuritica/interviewprep/internal/progress"
	"github.com/SebastianBuritica/interviewprep/internal/review"
	"github.com/SebastianBuritica/interviewprep/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learner progress and the review schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		now := time.Now()

		prog, err := progress.Compute(ctx, st.EventRepo(), now)
		if err != nil {
			return fmt.Errorf("compute progress: %w", err)
		}

		if prog.TotalAnswered == 0 {
			fmt.Println("No drills recorded yet. Run interviewprep to start practicing.")
			return nil
		}

		fmt.Printf("Answered:    %d (%.0f%% correct)\n", prog.TotalAnswered, prog.Accuracy()*100)
		fmt.Printf("Streak:      %d day(s), %d answered today\n", prog.StreakDays, prog.AnsweredToday)
		fmt.Printf("Challenges:  %d completed\n", prog.ChallengesCompleted)
		fmt.Println()

		fmt.Printf("%-18s  %-12s  %8s  %8s  %9s\n", "Topic", "Strength", "Answered", "Correct", "Accuracy")
		fmt.Println(strings.Repeat("─", 64))
		for _, tp := range prog.SortedTopics() {
			fmt.Printf("%-18s  %-12s  %8d  %8d  %8.0f%%\n",
				guides.TopicName(tp.Topic), tp.Strength, tp.Attempts, tp.Correct, tp.Accuracy()*100)
		}

		printReviewSchedule(ctx, st.SnapshotRepo(), now)
		return nil
	},
}

// printReviewSchedule lists tracked topics with their next review date.
// Schedule state lives in the latest snapshot; no snapshot means no
// topic has reached strong yet.
func printReviewSchedule(ctx context.Context, snapshots store.SnapshotRepo, now time.Time) {
	snap, err := snapshots.Latest(ctx)
	if err != nil || snap == nil || len(snap.Data.Review) == 0 {
		return
	}

	sched := review.NewScheduler(&snap.Data)

	topics := make([]string, 0, len(snap.Data.Review))
	for topic := range snap.Data.Review {
		topics = append(topics, topic)
	}
	sort.Strings(topics)

	fmt.Println()
	fmt.Printf("%-18s  %6s  %s\n", "Review", "Stage", "Next due")
	fmt.Println(strings.Repeat("─", 48))
	for _, topic := range topics {
		tr := sched.Get(topic)
		if tr == nil {
			continue
		}
		due := tr.DueAt.Format("Jan 02, 2006")
		if tr.IsDue(now) {
			due = "due now"
		}
		fmt.Printf("%-18s  %6d  %s\n", guides.TopicName(topic), tr.Stage, due)
	}
}
