package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"yumi/internal/engine"
	"yumi/internal/yumi"
)

var errUnknownCommand = errors.New("unknown command")

// session 一行一条命令的文本协议：
//
//	position startpos|<record> [moves <mv>...]
//	move <mv>
//	go <seconds>        -> bestmove <mv>|S
//	show | record | quit
type session struct {
	eng   *engine.Engine
	rules yumi.Rules
	pos   *yumi.Position
	out   io.Writer
}

func newSession(eng *engine.Engine, out io.Writer) *session {
	s := &session{eng: eng, rules: eng.Config().Rules, out: out}
	s.pos = yumi.NewInitialPosition(&s.rules)
	return s
}

// run 读到 quit 或 EOF 为止。命令出错只回一行 error，不中断会话。
func (s *session) run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		quit, err := s.handle(line)
		if err != nil {
			log.Warn().Err(err).Str("line", line).Msg("command failed")
			fmt.Fprintf(s.out, "error %v\n", err)
		}
		if quit {
			return nil
		}
	}
	return sc.Err()
}

func (s *session) handle(line string) (bool, error) {
	cmd, args, _ := strings.Cut(line, " ")
	args = strings.TrimSpace(args)
	switch cmd {
	case "quit":
		return true, nil
	case "position":
		return false, s.position(args)
	case "move":
		return false, s.move(args)
	case "go":
		return false, s.think(args)
	case "show":
		fmt.Fprint(s.out, s.pos.String())
		return false, nil
	case "record":
		fmt.Fprintln(s.out, s.pos.Record())
		return false, nil
	}
	return false, fmt.Errorf("%w: %q", errUnknownCommand, cmd)
}

func (s *session) position(args string) error {
	rec, moves, _ := strings.Cut(args, "moves")
	rec = strings.TrimSpace(rec)

	var pos *yumi.Position
	if rec == "startpos" {
		pos = yumi.NewInitialPosition(&s.rules)
	} else {
		var err error
		if pos, err = yumi.ParsePosition(rec, &s.rules); err != nil {
			return err
		}
	}
	for _, text := range strings.Fields(moves) {
		if err := playOn(pos, text); err != nil {
			return err
		}
	}
	s.pos = pos
	return nil
}

func (s *session) move(text string) error {
	return playOn(s.pos, text)
}

func (s *session) think(args string) error {
	seconds, err := strconv.ParseFloat(args, 64)
	if err != nil || seconds < 0 {
		return fmt.Errorf("bad think time %q", args)
	}
	fmt.Fprintf(s.out, "bestmove %s\n", s.eng.BestMove(s.pos, seconds))
	return nil
}

func playOn(pos *yumi.Position, text string) error {
	m, err := yumi.ParseMove(text, pos.SideToMove())
	if err != nil {
		return err
	}
	if !pos.IsPseudoLegal(m) || !pos.IsLegal(m) {
		return fmt.Errorf("%w: illegal %s", yumi.ErrInvalidMove, text)
	}
	pos.Apply(m)
	return nil
}
