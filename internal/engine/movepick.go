package engine

import "yumi/internal/yumi"

type pickStage int8

const (
	stageGenCaptures pickStage = iota
	stageCaptures
	stageGenQuiets
	stageQuiets
	stageGenDrops
	stageDrops
	stageDone
)

// MovePicker 按需分阶段生成着法：吃子（MVV-LVA 选择）→ 升级 → 普通走子 → 打入。
// 每个节点一个，只给出伪合法着法，调用方自己判 IsLegal。
type MovePicker struct {
	pos    *yumi.Position
	values *[yumi.NumPieceTypes]Value
	list   yumi.MoveList
	cur    int
	promos int // 还没给出的升级着法
	stage  pickStage
}

// Init 放在调用方栈上用，避免每个节点分配
func (mp *MovePicker) Init(pos *yumi.Position, values *[yumi.NumPieceTypes]Value) {
	mp.pos = pos
	mp.values = values
	mp.list.Reset()
	mp.cur = 0
	mp.promos = 0
	mp.stage = stageGenCaptures
}

// Next 返回下一个着法；取完返回 false
func (mp *MovePicker) Next() (yumi.Move, bool) {
	for {
		switch mp.stage {
		case stageGenCaptures:
			mp.list.Generate(mp.pos, yumi.Captures)
			mp.scoreCaptures()
			mp.stage = stageCaptures

		case stageCaptures:
			if mp.cur < mp.list.Len() {
				mp.pickBest()
				m := mp.list.At(mp.cur)
				mp.cur++
				return m, true
			}
			mp.stage = stageGenQuiets

		case stageGenQuiets:
			start := mp.list.Len()
			mp.list.Generate(mp.pos, yumi.Quiets)
			for i := start; i < mp.list.Len(); i++ {
				if e := mp.list.Entry(i); e.Move.Promote {
					e.Score = 1
					mp.promos++
				}
			}
			mp.stage = stageQuiets

		case stageQuiets, stageDrops:
			if mp.promos > 0 {
				mp.pickBest()
				mp.promos--
			}
			if mp.cur < mp.list.Len() {
				m := mp.list.At(mp.cur)
				mp.cur++
				return m, true
			}
			mp.stage++

		case stageGenDrops:
			mp.list.Generate(mp.pos, yumi.Drops)
			mp.stage = stageDrops

		default:
			return yumi.NullMove, false
		}
	}
}

// scoreCaptures 价值高的被吃子优先，同样的被吃子用便宜的子去吃
func (mp *MovePicker) scoreCaptures() {
	for i := 0; i < mp.list.Len(); i++ {
		e := mp.list.Entry(i)
		victim := mp.pos.At(e.Move.To).Type()
		attacker := mp.pos.At(e.Move.From).Type()
		score := int32(mp.values[victim])*16 - int32(mp.values[attacker])
		if e.Move.Promote {
			score += int32(mp.values[attacker.Promoted()] - mp.values[attacker])
		}
		e.Score = score
	}
}

// pickBest 把剩余着法里分最高的换到 cur（惰性选择排序）
func (mp *MovePicker) pickBest() {
	best := mp.cur
	for i := mp.cur + 1; i < mp.list.Len(); i++ {
		if mp.list.Entry(i).Score > mp.list.Entry(best).Score {
			best = i
		}
	}
	if best != mp.cur {
		mp.list.Swap(best, mp.cur)
	}
}
