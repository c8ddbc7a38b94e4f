package http

import (
	"net/http"

	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/config"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/notifier"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/processor"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/pubsub"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/scorekeeper"
)

func NewServer(keeper *scorekeeper.Keeper, processor *processor.Processor, pubsub pubsub.PubSubClient, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier) *Server {
	server := &Server{
		Keeper:         keeper,
		Processor:      processor,
		PubSub:         pubsub,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	s.Router.Handle("GET /metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("GET /stats", Chain(s.StatsHandler(), paramsMiddleware))
	s.Router.Handle("GET /courses", Chain(s.ListCoursesHandler(), paramsMiddleware))
	s.Router.Handle("GET /players", Chain(s.ListPlayersHandler(), paramsMiddleware))
	s.Router.Handle("POST /players", Chain(s.AddPlayerHandler(), paramsMiddleware))
	s.Router.Handle("GET /rounds", Chain(s.ListRoundsHandler(), paramsMiddleware))
	s.Router.Handle("POST /rounds", Chain(s.StartRoundHandler(), paramsMiddleware))
	s.Router.Handle("GET /rounds/{id}", Chain(s.GetRoundHandler(), paramsMiddleware))
	s.Router.Handle("DELETE /rounds/{id}", Chain(s.DeleteRoundHandler(), paramsMiddleware))
	s.Router.Handle("POST /rounds/{id}/holes", Chain(s.SubmitHoleHandler(), paramsMiddleware))
	s.Router.Handle("PUT /rounds/{id}/holes/{hole}", Chain(s.EditHoleHandler(), paramsMiddleware))
	s.Router.Handle("POST /rounds/{id}/games/{game}/press", Chain(s.PressHandler(), paramsMiddleware))
	s.Router.Handle("POST /rounds/{id}/games/{game}/courtesy", Chain(s.CourtesyHandler(), paramsMiddleware))
	s.Router.Handle("PUT /rounds/{id}/games/{game}/presses", Chain(s.SetPressesHandler(), paramsMiddleware))
	s.Router.Handle("POST /rounds/{id}/restart", Chain(s.RestartHandler(), paramsMiddleware))
	s.Router.Handle("POST /settle", Chain(s.SettleHandler(), paramsMiddleware))
	s.Router.Handle("POST /pubsub/round-events", Chain(s.RoundEventHandler(), paramsMiddleware))
	s.Router.Handle("POST /slack/command/standings", Chain(s.StandingsCommandHandler(), paramsMiddleware, s.slackVerificationMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
