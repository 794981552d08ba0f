package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"yumi/internal/yumi"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Weights 评估参数
type Weights struct {
	Board [yumi.NumPieceTypes]Value `json:"board"` // 盘上子力
	Hand  [yumi.NumPieceTypes]Value `json:"hand"`  // 持驹子力，不能入手的类型忽略

	Effect  Value `json:"effect"`  // 每个利き
	Defense Value `json:"defense"` // 利き落在己方棋子上
	Attack  Value `json:"attack"`  // 利き落在对方棋子上
}

//                                           NONE L    H    KA   KB   PA   PB   G    N    R    A0   A1   A2
var defaultBoardValues = [yumi.NumPieceTypes]Value{0, 100, 200, 800, 800, 600, 600, 400, 400, 200, 200, 500, 600}
var defaultHandValues = [yumi.NumPieceTypes]Value{0, 100, 200, 0, 0, 0, 0, 400, 400, 250, 200, 0, 0}

func DefaultWeights() Weights {
	return Weights{
		Board:   defaultBoardValues,
		Hand:    defaultHandValues,
		Effect:  10,
		Defense: 5,
		Attack:  3,
	}
}

// Config 引擎配置，可以从 JSON 文件加载；文件里没写的字段保持默认值
type Config struct {
	StartDepth int        `json:"start_depth"` // 迭代加深的起始深度
	MaxDepth   int        `json:"max_depth"`   // 0 表示只受时间限制
	Weights    Weights    `json:"weights"`
	Rules      yumi.Rules `json:"rules"`
}

func DefaultConfig() Config {
	return Config{
		StartDepth: 3,
		MaxDepth:   0,
		Weights:    DefaultWeights(),
		Rules:      *yumi.DefaultRules(),
	}
}

func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.StartDepth < 1 {
		return fmt.Errorf("%w: start_depth must be >= 1, got %d", ErrInvalidConfig, c.StartDepth)
	}
	if c.MaxDepth != 0 && c.MaxDepth < c.StartDepth {
		return fmt.Errorf("%w: max_depth %d below start_depth %d", ErrInvalidConfig, c.MaxDepth, c.StartDepth)
	}
	if err := c.Rules.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
