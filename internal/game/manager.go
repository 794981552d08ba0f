package game

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"yumi/internal/yumi"
)

var (
	ErrGameNotFound  = errors.New("game not found")
	ErrGameOver      = errors.New("game is over")
	ErrIllegalMove   = errors.New("illegal move")
	ErrNothingToUndo = errors.New("nothing to undo")
)

// Manager 内存里的对局表。所有修改都在 mu 下完成。
type Manager struct {
	mu    sync.RWMutex
	rules *yumi.Rules
	games map[string]*GameState
}

// NewManager rules 为 nil 时用默认规则
func NewManager(rules *yumi.Rules) *Manager {
	if rules == nil {
		rules = yumi.DefaultRules()
	}
	return &Manager{rules: rules, games: make(map[string]*GameState)}
}

// NewGame record 为空或 "startpos" 时从初始局面开始
func (m *Manager) NewGame(record string) (*GameState, error) {
	var pos *yumi.Position
	if record == "" || record == "startpos" {
		pos = yumi.NewInitialPosition(m.rules)
	} else {
		var err error
		if pos, err = yumi.ParsePosition(record, m.rules); err != nil {
			return nil, err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	g := newGameState(uuid.NewString(), pos)
	m.games[g.ID] = g
	return g, nil
}

// Get 返回的 GameState 不受 mu 保护，只能在没有其他 goroutine 操作这局时读写
func (m *Manager) Get(id string) (*GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	return g, nil
}

func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, id)
}

// Play 走一步，返回走完后的状态
func (m *Manager) Play(id, moveText string) (Status, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	if st := g.Status(); st != StatusOngoing {
		return st, ErrGameOver
	}
	mv, err := yumi.ParseMove(moveText, g.Pos.SideToMove())
	if err != nil {
		return StatusOngoing, err
	}
	if !g.Pos.IsPseudoLegal(mv) || !g.Pos.IsLegal(mv) {
		return StatusOngoing, fmt.Errorf("%w: %s", ErrIllegalMove, moveText)
	}
	g.play(mv)
	return g.Status(), nil
}

func (m *Manager) Undo(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	if !g.undo() {
		return ErrNothingToUndo
	}
	return nil
}

// Status 判断合法着法时会在局面上临时 Apply/Revert，所以要拿写锁
func (m *Manager) Status(id string) (Status, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	return g.Status(), nil
}
