package httpadapter

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"svw.info/sudogen/internal/domain"
	"svw.info/sudogen/internal/usecase"
	"svw.info/sudogen/internal/validator"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

// Register mounts the API under /api/v1.
func (h *Handler) Register(e *gin.Engine) {
	v1 := e.Group("/api").Group("/v1")
	v1.POST("/generate", h.generate)
	v1.POST("/solve", h.solve)
	v1.POST("/validate", h.validate)
	v1.POST("/hint", h.hint)
	v1.POST("/puzzles", h.save)
	v1.GET("/puzzles", h.list)
	v1.GET("/puzzles/:id", h.load)
}

// RequestLogger logs method, path, status, and duration for every request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("dur", time.Since(start).Round(time.Millisecond)).
			Msg("http")
	}
}

// bindBoard decodes a request board and rejects cell values outside 0..9
// before they can reach the solvers or the conflict scan.
func bindBoard(c *gin.Context, values [9][9]uint8) (*domain.Board, bool) {
	b := &domain.Board{Values: values}
	if err := validator.CheckBoard(b); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return b, true
}

// ---- Generate ----

type generateReq struct {
	// Seed is a pointer so an explicit 0 is honored and stays reproducible.
	Seed       *int64 `json:"seed,omitempty"`
	EmptyCells int    `json:"emptyCells,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
}

type generateResp struct {
	Puzzle     *domain.Puzzle `json:"puzzle"`
	DurationMs int64          `json:"durationMs"`
	Nodes      int            `json:"nodes"`
}

func (h *Handler) generate(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON", "message": err.Error()})
		return
	}
	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}
	empty := req.EmptyCells
	if empty == 0 {
		empty = domain.ParseDifficulty(req.Difficulty).EmptyCells()
	}
	p, st, err := h.UC.Generate(c.Request.Context(), seed, empty)
	if err != nil {
		log.Err(err).Int("emptyCells", empty).Msg("generate puzzle")
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrInvalidParameter) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	// Label the record only when the request named a difficulty or relied on
	// the default; an explicit emptyCells count is not a difficulty claim.
	if req.Difficulty != "" || req.EmptyCells == 0 {
		p.Difficulty = domain.ParseDifficulty(req.Difficulty)
	}
	c.JSON(http.StatusOK, generateResp{Puzzle: p, DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes})
}

// ---- Solve ----

type solveReq struct {
	Board    [9][9]uint8 `json:"board"`
	Strategy string      `json:"strategy,omitempty"`
}

type solveResp struct {
	Board      [9][9]uint8 `json:"board"`
	Strategy   string      `json:"strategy"`
	DurationMs int64       `json:"durationMs"`
	Nodes      int         `json:"nodes"`
}

func (h *Handler) solve(c *gin.Context) {
	var req solveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON", "message": err.Error()})
		return
	}
	strategy := domain.ParseStrategy(req.Strategy)
	b, ok := bindBoard(c, req.Board)
	if !ok {
		return
	}
	st, err := h.UC.Solve(c.Request.Context(), b, strategy)
	if err != nil {
		log.Err(err).Str("strategy", strategy.String()).Msg("solve board")
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrUnsolvable) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": err.Error(), "nodes": st.Nodes})
		return
	}
	c.JSON(http.StatusOK, solveResp{
		Board:      b.Values,
		Strategy:   strategy.String(),
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// ---- Validate ----

type validateReq struct {
	Board [9][9]uint8 `json:"board"`
}

type validateResp struct {
	OK        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
}

func (h *Handler) validate(c *gin.Context) {
	var req validateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON", "message": err.Error()})
		return
	}
	b, bound := bindBoard(c, req.Board)
	if !bound {
		return
	}
	ok, conflicts, err := h.UC.Validate(c.Request.Context(), b)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Hint ----

type hintReq struct {
	Board [9][9]uint8 `json:"board"`
}

type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
}

func (h *Handler) hint(c *gin.Context) {
	var req hintReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON", "message": err.Error()})
		return
	}
	b, ok := bindBoard(c, req.Board)
	if !ok {
		return
	}
	hh, found, err := h.UC.Hint(c.Request.Context(), b)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, hintResp{Found: found, Hint: hh})
}

// ---- Save / Load / List ----

func (h *Handler) save(c *gin.Context) {
	var p domain.Puzzle
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON", "message": err.Error()})
		return
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().UnixNano()
	}
	if err := h.UC.Save(c.Request.Context(), &p); err != nil {
		log.Err(err).Str("id", p.ID).Msg("save puzzle")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": p.ID})
}

func (h *Handler) load(c *gin.Context) {
	id := c.Param("id")
	p, err := h.UC.Load(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"puzzle": p})
}

func (h *Handler) list(c *gin.Context) {
	ps, err := h.UC.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"puzzles": ps})
}
