package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	httpadapter "svw.info/sudogen/internal/adapters/http"
	"svw.info/sudogen/internal/bench"
	"svw.info/sudogen/internal/domain"
	"svw.info/sudogen/internal/generator"
	"svw.info/sudogen/internal/hint"
	"svw.info/sudogen/internal/infrastructure/storage"
	"svw.info/sudogen/internal/solver"
	"svw.info/sudogen/internal/usecase"
	"svw.info/sudogen/internal/validator"
)

func newService(dataDir string) *usecase.Service {
	naive := solver.New(domain.NaiveSearch)
	heuristic := solver.New(domain.HeuristicSearch)
	g := generator.NewDiagonal(heuristic)
	v := validator.New()
	h := hint.NewSingles()
	st := storage.NewFS(dataDir)
	return usecase.NewService(naive, heuristic, g, v, h, st)
}

func newRootCmd() *cobra.Command {
	var level string
	root := &cobra.Command{
		Use:   "sudogen",
		Short: "Generate, solve, and serve Sudoku puzzles",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			lvl, err := zerolog.ParseLevel(level)
			if err != nil {
				lvl = zerolog.InfoLevel
			}
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(lvl).With().Timestamp().Logger()
		},
	}
	root.PersistentFlags().StringVar(&level, "log-level", "info", "debug|info|warn|error")
	root.AddCommand(newServeCmd(), newGenerateCmd(), newSolveCmd(), newBenchCmd())
	return root
}

func newServeCmd() *cobra.Command {
	var addr, dataDir string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := newService(dataDir)
			h := httpadapter.New(uc)

			gin.SetMode(gin.ReleaseMode)
			e := gin.New()
			e.Use(httpadapter.RequestLogger(), gin.Recovery())
			h.Register(e)

			srv := &http.Server{
				Addr:              addr,
				Handler:           e,
				ReadHeaderTimeout: 5 * time.Second,
			}
			log.Info().Str("addr", addr).Str("data", dataDir).Msg("listening")
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&dataDir, "data", "./data", "save directory")
	return cmd
}

func newGenerateCmd() *cobra.Command {
	var (
		count, empty int
		seed         int64
		dataDir      string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Create and persist puzzles",
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			uc := newService(dataDir)
			ctx := cmd.Context()
			for i := 0; i < count; i++ {
				p, st, err := uc.Generate(ctx, seed+int64(i), empty)
				if err != nil {
					return err
				}
				if err := uc.Save(ctx, p); err != nil {
					return err
				}
				log.Info().Str("id", p.ID).Int64("seed", p.Seed).
					Int("nodes", st.Nodes).Dur("dur", st.Duration).
					Msg("puzzle saved")
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&count, "count", 10, "number of puzzles to generate")
	cmd.Flags().IntVar(&empty, "empty", 45, "empty cells per puzzle (1-81)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "base random seed (0 = time-based)")
	cmd.Flags().StringVar(&dataDir, "data", "./data", "save directory")
	return cmd
}

func newSolveCmd() *cobra.Command {
	var (
		id, strategy, dataDir string
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a stored puzzle and print the grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := newService(dataDir)
			ctx := cmd.Context()
			p, err := uc.Load(ctx, id)
			if err != nil {
				return err
			}
			b := p.Board.Clone()
			st, err := uc.Solve(ctx, &b, domain.ParseStrategy(strategy))
			if err != nil {
				return err
			}
			fmt.Print(b.String())
			log.Info().Str("id", id).Int("nodes", st.Nodes).
				Dur("dur", st.Duration).Msg("solved")
			return nil
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "puzzle ID to solve")
	cmd.Flags().StringVar(&strategy, "strategy", "heuristic", "naive|heuristic")
	cmd.Flags().StringVar(&dataDir, "data", "./data", "save directory")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func newBenchCmd() *cobra.Command {
	var (
		runs, empty int
		seed        int64
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare the naive and heuristic solvers",
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := bench.Compare(cmd.Context(), runs, empty, seed)
			if err != nil {
				return err
			}
			log.Info().Int("runs", rep.Runs).Int("emptyCells", rep.EmptyCells).
				Int("naiveNodes", rep.Naive.Nodes).Dur("naiveDur", rep.Naive.Duration).
				Int("heuristicNodes", rep.Heuristic.Nodes).Dur("heuristicDur", rep.Heuristic.Duration).
				Msg("comparison")
			return nil
		},
	}
	cmd.Flags().IntVar(&runs, "runs", 10, "puzzles per comparison")
	cmd.Flags().IntVar(&empty, "empty", 45, "empty cells per puzzle (1-81)")
	cmd.Flags().Int64Var(&seed, "seed", 1, "base random seed")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
