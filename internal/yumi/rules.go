package yumi

import (
	"encoding/json"
	"fmt"
)

// RoyalLoss 王族判负条件
type RoyalLoss int

const (
	// LoseAll 盘上没有任何王族时判负
	LoseAll RoyalLoss = iota
	// LoseAny 失去任意一个王族即判负
	LoseAny
)

func (r RoyalLoss) String() string {
	if r == LoseAny {
		return "any"
	}
	return "all"
}

func (r RoyalLoss) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *RoyalLoss) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "all":
		*r = LoseAll
	case "any":
		*r = LoseAny
	default:
		return fmt.Errorf("unknown royal_loss %q", s)
	}
	return nil
}

// Rules 规则里源码看不出来、需要显式配置的部分
type Rules struct {
	// DropZone 打入允许的最大相对行（0 = 自家底线）
	DropZone int `json:"drop_zone"`
	// ArcherPromotion 弓兵进入敌阵三行（或在其中移动）时可以升一级
	ArcherPromotion bool      `json:"archer_promotion"`
	RoyalLoss       RoyalLoss `json:"royal_loss"`
}

func DefaultRules() *Rules {
	return &Rules{
		DropZone:        4,
		ArcherPromotion: true,
		RoyalLoss:       LoseAll,
	}
}

func (r *Rules) Validate() error {
	if !between(r.DropZone, 0, Ranks-1) {
		return fmt.Errorf("drop_zone %d out of range [0,%d]", r.DropZone, Ranks-1)
	}
	return nil
}

// promotionRank 弓兵升级区的起始相对行
const promotionRank = 5

func (r *Rules) canDrop(side Side, sq Square) bool {
	return relativeRank(side, sq) <= r.DropZone
}

func (r *Rules) canPromote(pc Piece, from, to Square) bool {
	if !r.ArcherPromotion || pc.Type().Promoted() == PieceNone {
		return false
	}
	side := pc.Side()
	return relativeRank(side, from) >= promotionRank || relativeRank(side, to) >= promotionRank
}
