// Command gtr plays games from the terminal against a JSON save file:
// create a game, apply actions to it, show the current state.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	gamecli "glory-to-rome-backend/internal/cli"
	"glory-to-rome-backend/internal/game"
	"glory-to-rome-backend/internal/game/action"
	"glory-to-rome-backend/internal/logger"
	"glory-to-rome-backend/internal/replay"
)

func main() {
	logger.Set(zap.NewNop()) // renderer output only; no log noise on the terminal

	cmd := &cli.Command{
		Name:  "gtr",
		Usage: "play Glory to Rome from the terminal",
		Commands: []*cli.Command{
			newCommand(),
			applyCommand(),
			showCommand(),
			verifyCommand(),
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:      "new",
		Usage:     "create a game and write its save file",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "players", Usage: "player names in seat order", Required: true},
			&cli.Int64Flag{Name: "seed", Usage: "shuffle seed"},
			&cli.IntFlag{Name: "goal", Usage: "influence goal ending the game", Value: game.DefaultInfluenceGoal},
			&cli.BoolFlag{Name: "pool-drain", Usage: "end the game when the pool empties"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("missing save file argument")
			}
			g, err := game.NewGame(game.Settings{
				Players:       cmd.StringSlice("players"),
				Seed:          cmd.Int64("seed"),
				InfluenceGoal: cmd.Int("goal"),
				PoolDrainEnds: cmd.Bool("pool-drain"),
			})
			if err != nil {
				return err
			}
			if err := save(path, replay.Record(g, nil)); err != nil {
				return err
			}
			fmt.Println(gamecli.Render(g.Snapshot(), gamecli.DetectWidth()))
			return nil
		},
	}
}

func applyCommand() *cli.Command {
	return &cli.Command{
		Name:      "apply",
		Usage:     "apply one or more actions to a save file",
		ArgsUsage: "FILE ACTION...",
		Description: `Each ACTION is the JSON wire form, for example:
   '{"kind":"THINKERORLEAD","player":0,"args":[true]}'
A rejected action leaves the file untouched and exits non-zero.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("missing save file argument")
			}
			if cmd.Args().Len() < 2 {
				return fmt.Errorf("no actions given")
			}
			doc, err := load(path)
			if err != nil {
				return err
			}
			g, err := doc.Rebuild()
			if err != nil {
				return err
			}

			history := doc.History
			for _, raw := range cmd.Args().Slice()[1:] {
				a, err := action.Decode([]byte(raw))
				if err != nil {
					return err
				}
				if err := g.Handle(a); err != nil {
					return err
				}
				history = append(history, a)
			}

			if err := save(path, replay.Record(g, history)); err != nil {
				return err
			}
			fmt.Println(gamecli.Render(g.Snapshot(), gamecli.DetectWidth()))
			return nil
		},
	}
}

func showCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "render the current state of a save file",
		ArgsUsage: "FILE",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("missing save file argument")
			}
			doc, err := load(path)
			if err != nil {
				return err
			}
			g, err := doc.Rebuild()
			if err != nil {
				return err
			}
			fmt.Println(gamecli.Render(g.Snapshot(), gamecli.DetectWidth()))
			return nil
		},
	}
}

func verifyCommand() *cli.Command {
	return &cli.Command{
		Name:      "verify",
		Usage:     "replay a save file and check its integrity",
		ArgsUsage: "FILE",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("missing save file argument")
			}
			doc, err := load(path)
			if err != nil {
				return err
			}
			if err := doc.Verify(); err != nil {
				return err
			}
			fmt.Println("✅ save file verified")
			return nil
		},
	}
}

func load(path string) (replay.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return replay.Document{}, err
	}
	return replay.Unmarshal(raw)
}

func save(path string, doc replay.Document) error {
	raw, err := doc.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}
