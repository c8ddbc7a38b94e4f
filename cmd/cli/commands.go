package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var (
	courseName string
	teeName    string
	stake      int
	status     string
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(coursesCmd)

	playersCmd.AddCommand(playersAddCmd)
	rootCmd.AddCommand(playersCmd)

	roundsStartCmd.Flags().StringVar(&courseName, "course", "", "Course name, the default course when empty")
	roundsStartCmd.Flags().StringVar(&teeName, "tee", "", "Tee set, the course default when empty")
	roundsStartCmd.Flags().IntVar(&stake, "stake", 0, "Starting stake, the server default when 0")
	roundsListCmd.Flags().StringVar(&status, "status", "", "Only list rounds with this status")
	roundsCmd.AddCommand(roundsListCmd, roundsStartCmd, roundsShowCmd, roundsDeleteCmd, roundsRestartCmd)
	rootCmd.AddCommand(roundsCmd)

	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(pressCmd)
	rootCmd.AddCommand(courtesyCmd)
	rootCmd.AddCommand(pressesCmd)
	rootCmd.AddCommand(settleCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/health", nil)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/metrics", nil)
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show round counters",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/stats", nil)
	},
}

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List the courses known to the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/courses", nil)
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List favorite players",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/players", nil)
	},
}

var playersAddCmd = &cobra.Command{
	Use:   "add <name> <handicap>",
	Short: "Remember a favorite player",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodPost, "/players", map[string]string{"name": args[0], "handicap": args[1]})
	},
}

var roundsCmd = &cobra.Command{
	Use:   "rounds",
	Short: "Manage rounds",
}

var roundsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored rounds",
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoint := "/rounds"
		if status != "" {
			endpoint += "?status=" + url.QueryEscape(status)
		}
		return performRequest(http.MethodGet, endpoint, nil)
	},
}

var roundsStartCmd = &cobra.Command{
	Use:     "start <name:handicap>...",
	Short:   "Start a round for 4 or 5 players",
	Example: `  hogballs-cli rounds start Alice:4 Bob:12 Carol:0 Dave:18 --stake 2`,
	Args:    cobra.RangeArgs(4, 5),
	RunE: func(cmd *cobra.Command, args []string) error {
		players := make([]map[string]string, 0, len(args))
		for _, arg := range args {
			name, hcp, ok := strings.Cut(arg, ":")
			if !ok {
				return fmt.Errorf("player %q must be written as name:handicap", arg)
			}
			players = append(players, map[string]string{"name": name, "handicap": hcp})
		}
		return performRequest(http.MethodPost, "/rounds", map[string]any{
			"course":  courseName,
			"tee":     teeName,
			"stake":   stake,
			"players": players,
		})
	},
}

var roundsShowCmd = &cobra.Command{
	Use:   "show <round-id>",
	Short: "Show the state of a round",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/rounds/"+args[0], nil)
	},
}

var roundsDeleteCmd = &cobra.Command{
	Use:   "delete <round-id>",
	Short: "Delete a round",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodDelete, "/rounds/"+args[0], nil)
	},
}

var roundsRestartCmd = &cobra.Command{
	Use:   "restart <round-id>",
	Short: "Clear every score of a round and start again from hole 1",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodPost, "/rounds/"+args[0]+"/restart", nil)
	},
}

var scoreCmd = &cobra.Command{
	Use:   "score <round-id> <gross>...",
	Short: "Submit the gross scores of the current hole in player order",
	Args:  cobra.RangeArgs(5, 6),
	RunE: func(cmd *cobra.Command, args []string) error {
		gross, err := parseScores(args[1:])
		if err != nil {
			return err
		}
		return performRequest(http.MethodPost, "/rounds/"+args[0]+"/holes", map[string]any{"gross": gross})
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <round-id> <hole> <gross>...",
	Short: "Correct the gross scores of a played hole",
	Args:  cobra.RangeArgs(6, 7),
	RunE: func(cmd *cobra.Command, args []string) error {
		gross, err := parseScores(args[2:])
		if err != nil {
			return err
		}
		return performRequest(http.MethodPut, "/rounds/"+args[0]+"/holes/"+args[1], map[string]any{"gross": gross})
	},
}

var pressCmd = &cobra.Command{
	Use:   "press <round-id> <game>",
	Short: "Press for the team trailing in a game",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodPost, "/rounds/"+args[0]+"/games/"+args[1]+"/press", nil)
	},
}

var courtesyCmd = &cobra.Command{
	Use:   "courtesy <round-id> <game>",
	Short: "Grant a courtesy press on hole 18",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodPost, "/rounds/"+args[0]+"/games/"+args[1]+"/courtesy", nil)
	},
}

var pressesCmd = &cobra.Command{
	Use:     "presses <round-id> <game> <schedule-json>",
	Short:   "Replace the press schedule of a game",
	Example: `  hogballs-cli presses 1b2c 1 '{"front_b":4,"back_a":12}'`,
	Args:    cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		var schedule map[string]int
		if err := json.Unmarshal([]byte(args[2]), &schedule); err != nil {
			return fmt.Errorf("invalid press schedule: %w", err)
		}
		return performRequest(http.MethodPut, "/rounds/"+args[0]+"/games/"+args[1]+"/presses", schedule)
	},
}

var settleCmd = &cobra.Command{
	Use:   "settle",
	Short: "Credit completed rounds to the career totals of their players",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodPost, "/settle", nil)
	},
}

func parseScores(args []string) ([]int, error) {
	gross := make([]int, len(args))
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("gross score %q for player %d is not a number", arg, i+1)
		}
		gross[i] = v
	}
	return gross, nil
}

func performRequest(method, endpoint string, payload any) error {
	target := host + endpoint
	if dryRun {
		sep := "?"
		if strings.Contains(target, "?") {
			sep = "&"
		}
		target += sep + "dry_run=true"
	}
	fmt.Printf("Making request to %s %s\n", method, target)

	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequest(method, target, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(respBody))

	return nil
}
