package engine

// Kind discriminates what a GameObject is, so hit results can be
// dispatched without inspecting component types.
type Kind int

const (
	KindNone Kind = iota
	KindActor
	KindTerrain
	KindCoin
	KindStar
	KindQuestionBlock
)

func (k Kind) String() string {
	switch k {
	case KindActor:
		return "actor"
	case KindTerrain:
		return "terrain"
	case KindCoin:
		return "coin"
	case KindStar:
		return "star"
	case KindQuestionBlock:
		return "question_block"
	default:
		return "none"
	}
}

// Collectible reports whether objects of this kind are picked up on overlap.
func (k Kind) Collectible() bool {
	return k == KindCoin || k == KindStar
}
