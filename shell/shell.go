// Package shell is the interactive front end to the search engine. It
// owns all input parsing and output formatting; the engine packages know
// nothing about presentation.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/taquinlab/taquin/board"
	"github.com/taquinlab/taquin/config"
	"github.com/taquinlab/taquin/movegen"
	"github.com/taquinlab/taquin/solver"
)

type ShellController struct {
	l   *readline.Instance
	cfg *config.Config

	curBoard board.Board
	goal     board.Board
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "set <tiles> - set the board from nine row-major values, 0 for the blank\n")
	io.WriteString(w, "show - show the current board, inversion count and solvability\n")
	io.WriteString(w, "moves - list the legal moves from the current board\n")
	io.WriteString(w, "solve [bfs|astar|both] [tiles] - search for an optimal solution; defaults to both\n")
	io.WriteString(w, "goal - show the goal board\n")
	io.WriteString(w, "bye - exit\n")
}

func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mtaquin>\033[0m ",
		HistoryFile:     "/tmp/readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	return &ShellController{
		l:        l,
		cfg:      cfg,
		curBoard: board.Goal(),
		goal:     board.Goal(),
	}
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.l.Stderr())
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

func (sc *ShellController) setBoard(line string) error {
	args, err := shellquote.Split(line)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return errors.New("please provide nine tile values, e.g. `set 1 8 2 0 4 3 7 6 5`")
	}
	b, err := board.Parse(strings.Join(args[1:], " "))
	if err != nil {
		return err
	}
	sc.curBoard = b
	log.Debug().Msgf("Set board to %v", b)
	return nil
}

func (sc *ShellController) showBoard() {
	solvable, inversions := board.Solvable(sc.curBoard)
	sc.showMessage(sc.curBoard.ToDisplayText())
	sc.showMessage(fmt.Sprintf("inversions: %d  solvable: %v  manhattan: %d",
		inversions, solvable, board.ManhattanDistance(sc.curBoard, sc.goal)))
}

func (sc *ShellController) showMoves() {
	for _, nb := range movegen.Neighbors(movegen.NewRoot(sc.curBoard)) {
		sc.showMessage(nb.Move)
	}
}

func (sc *ShellController) showPath(path []solver.Step) {
	for i, step := range path {
		if step.Move != "" {
			sc.showMessage(fmt.Sprintf("%d: %s", i, step.Move))
		}
		sc.showMessage(step.Board.ToDisplayText())
	}
	sc.showMessage(fmt.Sprintf("solved in %d moves", len(path)-1))
}

func (sc *ShellController) solve(line string) error {
	fields := strings.Fields(line)
	algo := "both"
	if len(fields) > 1 {
		algo = fields[1]
	}
	if len(fields) > 2 {
		// Inline board, for one-shot invocations.
		b, err := board.Parse(strings.Join(fields[2:], " "))
		if err != nil {
			return err
		}
		sc.curBoard = b
	}

	if ok, inversions := board.Solvable(sc.curBoard); !ok {
		sc.showMessage(sc.curBoard.ToDisplayText())
		return fmt.Errorf("board has %d inversions and cannot reach the goal", inversions)
	}
	budget := sc.cfg.GetInt("max-expand")

	switch algo {
	case "bfs":
		s := solver.NewBFSSolver(sc.goal)
		s.SetNodeBudget(budget)
		tick := time.Now()
		path, expanded, err := s.Solve(sc.curBoard)
		if err != nil {
			return err
		}
		sc.showPath(path)
		sc.showMessage(fmt.Sprintf("bfs expanded %d states (%.2f ms)",
			expanded, float64(time.Since(tick).Microseconds())/1000.0))
	case "astar":
		s := solver.NewAStarSolver(sc.goal)
		s.SetNodeBudget(budget)
		tick := time.Now()
		path, frontier, err := s.Solve(sc.curBoard)
		if err != nil {
			return err
		}
		sc.showPath(path)
		sc.showMessage(fmt.Sprintf("astar terminated with %d frontier entries (%.2f ms)",
			frontier, float64(time.Since(tick).Microseconds())/1000.0))
	case "both":
		res, err := solver.Compare(sc.curBoard, sc.goal, budget)
		if err != nil {
			return err
		}
		sc.showPath(res.AStarPath)
		sc.showMessage(fmt.Sprintf(
			"both searches found %d-move solutions; bfs expanded %d states, astar left %d frontier entries",
			res.Moves(), res.BFSExpanded, res.AStarFrontier))
	default:
		return errors.New("algorithm " + algo + " is not a valid choice")
	}
	return nil
}

// dispatch runs one command line. It reports whether the loop should
// quit, and any command error.
func (sc *ShellController) dispatch(line string, sig chan os.Signal) (bool, error) {
	switch {
	case line == "bye" || line == "exit":
		sig <- syscall.SIGINT
		return true, nil
	case line == "help":
		usage(sc.l.Stderr())
	case strings.HasPrefix(line, "set "):
		if err := sc.setBoard(line); err != nil {
			return false, err
		}
		sc.showBoard()
	case line == "show":
		sc.showBoard()
	case line == "goal":
		sc.showMessage(sc.goal.ToDisplayText())
	case line == "moves":
		sc.showMoves()
	case strings.HasPrefix(line, "solve"):
		return false, sc.solve(line)
	case line == "":
	default:
		log.Info().Msgf("you said: %v", strconv.Quote(line))
	}
	return false, nil
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		quit, cmderr := sc.dispatch(strings.TrimSpace(line), sig)
		if cmderr != nil {
			sc.showError(cmderr)
		}
		if quit {
			return
		}
	}
	sig <- syscall.SIGINT
}

// Execute runs a single command non-interactively and reports whether it
// succeeded, so the caller can set the process exit status.
func (sc *ShellController) Execute(sig chan os.Signal, line string) bool {
	_, err := sc.dispatch(strings.TrimSpace(line), sig)
	if err != nil {
		sc.showError(err)
		return false
	}
	return true
}

func (sc *ShellController) Cleanup() {
	sc.l.Close()
}
