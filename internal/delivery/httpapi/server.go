// Package httpapi exposes the REST surface: create games, read
// snapshots, submit actions.
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"glory-to-rome-backend/internal/delivery/dto"
	"glory-to-rome-backend/internal/game"
	"glory-to-rome-backend/internal/game/action"
	"glory-to-rome-backend/internal/logger"
	"glory-to-rome-backend/internal/session"
)

// Server holds the REST handlers.
type Server struct {
	manager *session.Manager
	log     *zap.Logger
}

// NewServer wires the handlers to a session manager.
func NewServer(manager *session.Manager) *Server {
	return &Server{
		manager: manager,
		log:     logger.Get().Named("http"),
	}
}

// Register mounts the routes on a gin engine.
func (s *Server) Register(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.POST("/games", s.createGame)
		api.GET("/games/:id", s.getGame)
		api.POST("/games/:id/actions", s.submitAction)
	}
}

type createGameRequest struct {
	Players       []string `json:"players" binding:"required"`
	Seed          int64    `json:"seed"`
	InfluenceGoal int      `json:"influence_goal"`
	PoolDrainEnds bool     `json:"pool_drain_ends"`
}

type createGameResponse struct {
	GameID string       `json:"game_id"`
	State  dto.StateDTO `json:"state"`
}

func (s *Server) createGame(c *gin.Context) {
	var req createGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, err := s.manager.Create(game.Settings{
		Players:       req.Players,
		Seed:          req.Seed,
		InfluenceGoal: req.InfluenceGoal,
		PoolDrainEnds: req.PoolDrainEnds,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.log.Info("✅ Game created",
		zap.String("game_id", sess.ID()),
		zap.Strings("players", req.Players),
	)
	c.JSON(http.StatusCreated, createGameResponse{
		GameID: sess.ID(),
		State:  dto.FromState(sess.Snapshot()),
	})
}

func (s *Server) getGame(c *gin.Context) {
	sess, ok := s.manager.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
		return
	}
	c.JSON(http.StatusOK, dto.FromState(sess.Snapshot()))
}

func (s *Server) submitAction(c *gin.Context) {
	sess, ok := s.manager.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
		return
	}

	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a, err := action.Decode(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := sess.Submit(a); err != nil {
		c.JSON(statusFor(err), gin.H{
			"error": err.Error(),
			"kind":  string(game.KindOf(err)),
		})
		return
	}
	c.JSON(http.StatusOK, dto.FromState(sess.Snapshot()))
}

// statusFor maps typed rejections to HTTP statuses. A rejection left
// the state untouched, so none of these are server errors.
func statusFor(err error) int {
	switch game.KindOf(err) {
	case game.ErrIllegalPayload:
		return http.StatusBadRequest
	case game.ErrUnexpectedAction:
		return http.StatusConflict
	case game.ErrRuleViolation, game.ErrEmptySource:
		return http.StatusUnprocessableEntity
	case game.ErrGameOver:
		return http.StatusGone
	default:
		return http.StatusInternalServerError
	}
}
