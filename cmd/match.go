package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/compasshud/compass/internal/logger"
	"github.com/compasshud/compass/internal/matching"
	"github.com/compasshud/compass/internal/occupation"
)

const (
	PromptReportByTier    = "Report by tier"
	PromptMatchesToFile   = "Dump matches to file"
	PromptOccupationStats = "Show occupation stats"
	PromptExit            = "Exit"

	outputText = "text"
	outputJSON = "json"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptReportByTier, PromptMatchesToFile, PromptOccupationStats, PromptExit},
}

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Find and rank institutions for an applicant",
	Run: func(cmd *cobra.Command, _ []string) {
		match(cmd)
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)
	addMatchFlags(matchCmd.Flags())
}

func addMatchFlags(flags *pflag.FlagSet) {
	flags.Float64("gpa", 0, "unweighted GPA on a 4.0 scale")
	flags.Int("sat", 0, "composite SAT score; takes precedence over the GPA when set")
	flags.Float64("budget", 0, "annual budget for tuition")
	flags.StringP("occupation", "o", "", "target occupation code, e.g. 15-1252. Asked interactively when unset")
	flags.StringSlice("prefer", nil, "campus preferences: greek, sports, diversity, hbcu, research")
	flags.StringToInt("weight", nil, "preference weights from 1 to 10, e.g. research=10")
	flags.String("output", outputText, "result format: text or json")
	flags.BoolP("yes", "y", false, "do not ask for further actions after printing matches")
}

// match is the main command for the cli.
func match(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the compass", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	req, err := requestFromFlags(cmd.Flags())
	if err != nil {
		logger.Fatal("reading flags", zap.Error(err))
	}

	autoApprove, _ := cmd.Flags().GetBool("yes")
	if req.OccupationCode == "" {
		if autoApprove {
			logger.Fatal("occupation is required", zap.String("hint", "pass --occupation when running with --yes"))
		}
		req.OccupationCode, err = pickOccupation()
		if err != nil {
			logger.Fatal("choosing an occupation", zap.Error(err))
		}
	}

	engine, closeCatalog, err := newEngine(ctx, config, logger)
	if err != nil {
		logger.Fatal("preparing the engine", zap.Error(err))
	}
	defer closeCatalog()

	stats, closeStats, err := newStats(config, logger)
	if err != nil {
		logger.Fatal("preparing occupation stats", zap.Error(err))
	}
	defer closeStats()

	found, err := engine.FindMatches(ctx, req)
	if err != nil {
		if errors.Is(err, matching.ErrInvalidRequest) {
			logger.Fatal("invalid applicant profile", zap.Error(err))
		}
		logger.Fatal("finding matches", zap.Error(err))
	}

	matches := &matching.Matches{Items: found}
	if matches.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no eligible institutions found"))
		return
	}

	output, _ := cmd.Flags().GetString("output")
	if err := printMatches(cmd.OutOrStdout(), matches, output); err != nil {
		logger.Fatal("printing matches", zap.Error(err))
	}

	logStats(logger, stats.Lookup(ctx, req.OccupationCode))

	if autoApprove {
		return
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(ctx, action, logger, stats, req, matches); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(ctx context.Context, action string, logger *zap.Logger, stats *occupation.Service, req matching.Request, matches *matching.Matches) error {
	switch action {
	case PromptReportByTier:
		pretty, _ := json.MarshalIndent(matches.ReportByTier(), "", "  ")
		logger.Info(string(pretty), zap.Int("matches count", matches.Len()))
		return nil
	case PromptMatchesToFile:
		filename, err := matches.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump matches to file: %w", err)
		}
		logger.Info("dumping matches to file", zap.String("filename", filename))
		return nil
	case PromptOccupationStats:
		logStats(logger, stats.Lookup(ctx, req.OccupationCode))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func requestFromFlags(flags *pflag.FlagSet) (matching.Request, error) {
	gpa, err := flags.GetFloat64("gpa")
	if err != nil {
		return matching.Request{}, err
	}
	sat, err := flags.GetInt("sat")
	if err != nil {
		return matching.Request{}, err
	}
	budget, err := flags.GetFloat64("budget")
	if err != nil {
		return matching.Request{}, err
	}
	code, err := flags.GetString("occupation")
	if err != nil {
		return matching.Request{}, err
	}
	prefer, err := flags.GetStringSlice("prefer")
	if err != nil {
		return matching.Request{}, err
	}
	weights, err := flags.GetStringToInt("weight")
	if err != nil {
		return matching.Request{}, err
	}

	req := matching.Request{
		GPA:            gpa,
		Budget:         budget,
		OccupationCode: strings.TrimSpace(code),
	}

	if flags.Changed("sat") {
		req.SAT = &sat
	}

	for _, p := range prefer {
		req.Preferences = append(req.Preferences, matching.Preference(strings.ToLower(strings.TrimSpace(p))))
	}

	if len(weights) > 0 {
		req.PreferenceWeights = make(map[matching.Preference]float64, len(weights))
		for p, w := range weights {
			req.PreferenceWeights[matching.Preference(strings.ToLower(strings.TrimSpace(p)))] = float64(w)
		}
	}

	return req, nil
}

// pickOccupation asks for a career class, then for one of its careers.
func pickOccupation() (string, error) {
	classes := occupation.Classes()
	labels := make([]string, 0, len(classes))
	for _, class := range classes {
		labels = append(labels, fmt.Sprintf("%s - %s", class.Name, class.Description))
	}

	classPrompt := promptui.Select{
		Label: "Choose a class and press ENTER",
		Items: labels,
	}
	idx, _, err := classPrompt.Run()
	if err != nil {
		return "", err
	}

	careers := occupation.Careers(classes[idx].ID)
	labels = labels[:0]
	for _, career := range careers {
		labels = append(labels, careerLabel(career))
	}

	careerPrompt := promptui.Select{
		Label: "Choose a career and press ENTER",
		Items: labels,
		Size:  len(labels),
	}
	idx, _, err = careerPrompt.Run()
	if err != nil {
		return "", err
	}

	return careers[idx].Code, nil
}

func careerLabel(career occupation.Career) string {
	return fmt.Sprintf("%s %s / $%.0f / %+.1f%%", career.Code, career.Title, career.Wage, career.Growth)
}

func printMatches(w io.Writer, matches *matching.Matches, output string) error {
	switch output {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(matches.Items)
	case outputText, "":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "#\tSCORE\tTIER\tINSTITUTION\tPAYOFF YEARS\tEARNINGS")
		for idx, m := range matches.Items {
			fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\t%.0f\n", idx+1, m.Score, m.Tier, m.Name, m.DebtPayoff, m.ProjectedEarnings)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown output format: %s", output)
	}
}

func logStats(logger *zap.Logger, stats occupation.Stats) {
	logger.Info("occupation stats",
		zap.String("occupation_code", stats.Code),
		zap.String("title", stats.Title),
		zap.Float64("annual_mean_wage", stats.Wage),
		zap.Float64("projected_growth", stats.Growth),
		zap.String("source", stats.Source),
	)
}
