package engine

import (
	"github.com/rs/zerolog"
)

// Engine 单线程搜索器，不能在多个 goroutine 间共享；并行对局每局各建一个。
type Engine struct {
	cfg   Config
	log   zerolog.Logger
	nodes int64
}

type Option func(*Engine)

func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

func NewEngine(cfg Config, opts ...Option) *Engine {
	e := &Engine{
		cfg: cfg,
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Config() Config { return e.cfg }

// Nodes 上一次搜索访问的节点数
func (e *Engine) Nodes() int64 { return e.nodes }
