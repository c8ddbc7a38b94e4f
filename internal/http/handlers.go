package http

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/course"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/handicap"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/pubsub"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/round"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/scorekeeper"
	"github.com/charmbracelet/log"
	"github.com/slack-go/slack"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) StatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := s.Keeper.Stats()
		if err != nil {
			log.Error("Failed to get stats", "error", err)
			http.Error(w, "Failed to get stats", http.StatusInternalServerError)
			return
		}
		respondJSON(w, http.StatusOK, stats)
	}
}

func (s *Server) ListCoursesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, s.Keeper.Courses())
	}
}

func (s *Server) ListPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := s.Keeper.Favorites()
		if err != nil {
			log.Error("Failed to get favorite players", "error", err)
			http.Error(w, "Failed to get players", http.StatusInternalServerError)
			return
		}
		respondJSON(w, http.StatusOK, players)
	}
}

func (s *Server) AddPlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var entry round.RosterEntry
		if !decodeBody(w, r, &entry) {
			return
		}
		player, err := s.Keeper.AddFavorite(entry)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, player)
	}
}

func (s *Server) ListRoundsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := round.Status(strings.ToUpper(r.URL.Query().Get("status")))
		rounds, err := s.Keeper.ListRounds(status)
		if err != nil {
			log.Error("Failed to list rounds", "error", err)
			http.Error(w, "Failed to list rounds", http.StatusInternalServerError)
			return
		}

		items := make([]roundListItem, 0, len(rounds))
		for _, rd := range rounds {
			item := roundListItem{
				ID:          rd.ID,
				Course:      rd.Course,
				Tee:         rd.Tee,
				Status:      rd.Status,
				CurrentHole: rd.CurrentHole,
				CreatedAt:   rd.CreatedAt.Unix(),
			}
			for _, p := range rd.Record.Players {
				item.Players = append(item.Players, p.Name)
			}
			items = append(items, item)
		}
		respondJSON(w, http.StatusOK, items)
	}
}

func (s *Server) StartRoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req scorekeeper.StartRequest
		if !decodeBody(w, r, &req) {
			return
		}
		view, err := s.Keeper.StartRound(req, isDryRunFromContext(r))
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, view)
	}
}

func (s *Server) GetRoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := s.Keeper.GetRound(r.PathValue("id"))
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, view)
	}
}

func (s *Server) DeleteRoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.Keeper.DeleteRound(r.PathValue("id")); err != nil {
			respondError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) SubmitHoleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req scoresRequest
		if !decodeBody(w, r, &req) {
			return
		}
		res, err := s.Keeper.SubmitHole(r.PathValue("id"), req.Gross, isDryRunFromContext(r))
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}

func (s *Server) EditHoleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hole, err := strconv.Atoi(r.PathValue("hole"))
		if err != nil {
			respondError(w, fmt.Errorf("%w: %q", round.ErrHoleOutOfRange, r.PathValue("hole")))
			return
		}
		var req scoresRequest
		if !decodeBody(w, r, &req) {
			return
		}
		res, err := s.Keeper.EditHole(r.PathValue("id"), hole, req.Gross, isDryRunFromContext(r))
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}

func (s *Server) PressHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		game, ok := gameIndex(w, r)
		if !ok {
			return
		}
		out, err := s.Keeper.Press(r.PathValue("id"), game, isDryRunFromContext(r))
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, out)
	}
}

func (s *Server) CourtesyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		game, ok := gameIndex(w, r)
		if !ok {
			return
		}
		out, err := s.Keeper.Courtesy(r.PathValue("id"), game, isDryRunFromContext(r))
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, out)
	}
}

func (s *Server) SetPressesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		game, ok := gameIndex(w, r)
		if !ok {
			return
		}
		var presses round.PressLog
		if !decodeBody(w, r, &presses) {
			return
		}
		view, err := s.Keeper.SetPresses(r.PathValue("id"), game, presses)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, view)
	}
}

func (s *Server) RestartHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := s.Keeper.Restart(r.PathValue("id"), isDryRunFromContext(r))
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, view)
	}
}

// SettleHandler credits every completed, unsettled round to its players.
func (s *Server) SettleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := s.Processor.SettleCompleted(isDryRunFromContext(r))
		if err != nil {
			log.Error("Settlement sweep failed", "error", err)
			http.Error(w, "Failed to settle rounds", http.StatusInternalServerError)
			return
		}
		respondJSON(w, http.StatusOK, summary)
	}
}

// RoundEventHandler receives round events from a Pub/Sub push subscription.
func (s *Server) RoundEventHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var msg pushMessage
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
			log.Error("Failed to unmarshal push envelope", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		log.Debug("Received round event", "subscription", msg.Subscription)

		rawData, err := base64.StdEncoding.DecodeString(msg.Message.Data)
		if err != nil {
			log.Error("Failed to decode base64 data", "error", err)
			http.Error(w, "Invalid base64 data", http.StatusBadRequest)
			return
		}
		var event pubsub.RoundEvent
		if err := s.PubSub.ProcessMessage(rawData, &event); err != nil {
			// Acknowledge undecodable messages so they are not redelivered forever.
			w.Write([]byte("IGNORED"))
			return
		}
		if err := s.Processor.ProcessEvent(event, isDryRunFromContext(r)); err != nil {
			log.Error("Failed to process round event", "error", err, "roundID", event.RoundID)
			http.Error(w, "Failed to process event", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}

// StandingsCommandHandler answers the standings slash command. The command
// text is a round id; without one the most recent round in progress is shown.
func (s *Server) StandingsCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cmd, err := slack.SlashCommandParse(r)
		if err != nil {
			log.Error("Failed to parse slash command", "error", err)
			http.Error(w, "Failed to parse command", http.StatusBadRequest)
			return
		}

		id := strings.TrimSpace(cmd.Text)
		if id == "" {
			rounds, err := s.Keeper.ListRounds(round.StatusInProgress)
			if err != nil || len(rounds) == 0 {
				respondJSON(w, http.StatusOK, map[string]string{"response_type": "ephemeral", "text": "No round in progress."})
				return
			}
			id = rounds[0].ID
		}

		view, err := s.Keeper.GetRound(id)
		if err != nil {
			respondJSON(w, http.StatusOK, map[string]string{"response_type": "ephemeral", "text": fmt.Sprintf("Round %s not found.", id)})
			return
		}
		msg, err := s.Notifier.FormatStandingsResponse(id, view.Snapshot)
		if err != nil {
			log.Error("Failed to format standings", "error", err)
			http.Error(w, "Failed to format standings", http.StatusInternalServerError)
			return
		}
		respondJSON(w, http.StatusOK, msg)
	}
}

// gameIndex reads the 1-based game number from the path.
func gameIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	n, err := strconv.Atoi(r.PathValue("game"))
	if err != nil || n < 1 {
		respondError(w, fmt.Errorf("%w: %q", round.ErrUnknownGame, r.PathValue("game")))
		return 0, false
	}
	return n - 1, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		log.Warn("Invalid request body", "error", err, "url", r.URL.Path)
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return false
	}
	return true
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}

// respondError maps domain errors to status codes.
func respondError(w http.ResponseWriter, err error) {
	resp := errorResponse{Error: err.Error()}
	var slotErr *round.SlotError
	if errors.As(err, &slotErr) {
		resp.Slot = slotErr.Slot + 1
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, scorekeeper.ErrRoundNotFound),
		errors.Is(err, course.ErrCourseNotFound),
		errors.Is(err, round.ErrUnknownGame):
		status = http.StatusNotFound
	case errors.Is(err, round.ErrRoundComplete),
		errors.Is(err, round.ErrHoleNotPlayed):
		status = http.StatusConflict
	case errors.Is(err, round.ErrInvalidPlayerCount),
		errors.Is(err, round.ErrInvalidHandicapInput),
		errors.Is(err, round.ErrEmptyPlayerName),
		errors.Is(err, round.ErrHoleOutOfRange),
		errors.Is(err, round.ErrIncompleteScoreSet),
		errors.Is(err, round.ErrInvalidGrossScore),
		errors.Is(err, round.ErrInvalidPressHole),
		errors.Is(err, round.ErrInvalidStake),
		errors.Is(err, round.ErrInvalidTee),
		errors.Is(err, course.ErrInvalidCourse),
		errors.Is(err, handicap.ErrInvalid):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		log.Error("Request failed", "error", err)
	}
	respondJSON(w, status, resp)
}
