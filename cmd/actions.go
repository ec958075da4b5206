package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/abhisek/studyplanner/internal/actions"
	"github.com/abhisek/studyplanner/internal/studyplan"
)

// errActionFailed is returned after a failed envelope has been printed so
// the process exits non-zero.
var errActionFailed = errors.New("action failed")

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a daily study plan",
	Example: `  studyplanner plan --deadlines "Math exam Friday" --difficulty "Math is hard" --performance "B in math"
  echo '{"deadlines":"...","subjectDifficulty":"...","pastPerformance":"..."}' | studyplanner plan --input -`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var req studyplan.DailyPlanRequest
		ok, err := readInput(cmd, &req)
		if err != nil {
			return err
		}
		if !ok {
			req.Deadlines, _ = cmd.Flags().GetString("deadlines")
			req.SubjectDifficulty, _ = cmd.Flags().GetString("difficulty")
			req.PastPerformance, _ = cmd.Flags().GetString("performance")
		}

		rt, err := setup(cmd, setupOpts{})
		if err != nil {
			return err
		}
		defer rt.Close()

		return writeResult(cmd, rt.service.GenerateDailyStudyPlan(cmd.Context(), req))
	},
}

var adaptCmd = &cobra.Command{
	Use:     "adapt",
	Short:   "Adapt a study plan to progress and test scores",
	Example: `  studyplanner adapt --plan "$(cat plan.txt)" --completed Algebra --score Math=90 --deadline "Math exam Friday"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var req studyplan.AdaptRequest
		ok, err := readInput(cmd, &req)
		if err != nil {
			return err
		}
		if !ok {
			if req, err = adaptFromFlags(cmd.Flags()); err != nil {
				return err
			}
		}

		rt, err := setup(cmd, setupOpts{})
		if err != nil {
			return err
		}
		defer rt.Close()

		return writeResult(cmd, rt.service.AdaptStudyPlan(cmd.Context(), req))
	},
}

var recommendCmd = &cobra.Command{
	Use:     "recommend",
	Short:   "Recommend study resources for a topic",
	Example: `  studyplanner recommend --topic "Photosynthesis" --level beginner --resources "Textbook ch. 4, Khan Academy"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var req studyplan.RecommendRequest
		ok, err := readInput(cmd, &req)
		if err != nil {
			return err
		}
		if !ok {
			req.Topic, _ = cmd.Flags().GetString("topic")
			level, _ := cmd.Flags().GetString("level")
			req.UserKnowledgeLevel = studyplan.KnowledgeLevel(level)
			req.AvailableResources, _ = cmd.Flags().GetString("resources")
		}

		rt, err := setup(cmd, setupOpts{})
		if err != nil {
			return err
		}
		defer rt.Close()

		return writeResult(cmd, rt.service.RecommendResources(cmd.Context(), req))
	},
}

// addAdaptFlags registers the adapt request flags. The list flags are
// arrays, so a value containing commas stays one entry.
func addAdaptFlags(fs *pflag.FlagSet) {
	fs.String("plan", "", "Current study plan text")
	fs.StringArray("completed", nil, "Completed topic (repeatable)")
	fs.StringArray("score", nil, "Practice test score as Subject=Score (repeatable)")
	fs.StringArray("deadline", nil, "Upcoming deadline (repeatable)")
}

func adaptFromFlags(fs *pflag.FlagSet) (studyplan.AdaptRequest, error) {
	var req studyplan.AdaptRequest
	req.CurrentStudyPlan, _ = fs.GetString("plan")
	req.CompletedTopics, _ = fs.GetStringArray("completed")
	req.UpcomingDeadlines, _ = fs.GetStringArray("deadline")
	raw, _ := fs.GetStringArray("score")
	for _, r := range raw {
		score, err := parseScore(r)
		if err != nil {
			return studyplan.AdaptRequest{}, err
		}
		req.PracticeTestScores = append(req.PracticeTestScores, score)
	}
	return req, nil
}

// readInput decodes the --input file ("-" for stdin) into v. It reports
// false when --input is not set.
func readInput(cmd *cobra.Command, v any) (bool, error) {
	path, _ := cmd.Flags().GetString("input")
	if path == "" {
		return false, nil
	}

	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return true, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	if err := json.NewDecoder(r).Decode(v); err != nil {
		return true, fmt.Errorf("decode input %s: %w", path, err)
	}
	return true, nil
}

func writeResult[T any](cmd *cobra.Command, res actions.Result[T]) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	if !res.Success {
		return errActionFailed
	}
	return nil
}

// parseScore parses "Subject=Score".
func parseScore(s string) (studyplan.TestScore, error) {
	i := strings.LastIndexByte(s, '=')
	if i < 0 {
		return studyplan.TestScore{}, fmt.Errorf("invalid score %q: want Subject=Score", s)
	}
	subject := strings.TrimSpace(s[:i])
	if subject == "" {
		return studyplan.TestScore{}, fmt.Errorf("invalid score %q: missing subject", s)
	}
	score, err := strconv.ParseFloat(strings.TrimSpace(s[i+1:]), 64)
	if err != nil {
		return studyplan.TestScore{}, fmt.Errorf("invalid score %q: %w", s, err)
	}
	return studyplan.TestScore{Subject: subject, Score: score}, nil
}

func init() {
	for _, c := range []*cobra.Command{planCmd, adaptCmd, recommendCmd} {
		c.Flags().StringP("input", "i", "", `Read the request as JSON from this file ("-" for stdin)`)
	}

	planCmd.Flags().String("deadlines", "", "Upcoming deadlines, one per line")
	planCmd.Flags().String("difficulty", "", "Perceived difficulty of each subject")
	planCmd.Flags().String("performance", "", "Past performance in each subject")

	addAdaptFlags(adaptCmd.Flags())

	recommendCmd.Flags().String("topic", "", "Topic to study")
	recommendCmd.Flags().String("level", "", "Knowledge level: beginner, intermediate or advanced")
	recommendCmd.Flags().String("resources", "", "Resources already available")
}
