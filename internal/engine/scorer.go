package engine

// Per-field confidence bonuses. The additive model rewards patterns that
// successfully extract more structured fields even when the base pattern
// confidence is modest; the clamp keeps the result a valid probability.
const (
	BonusAmount    = 0.30
	BonusMerchant  = 0.20
	BonusReference = 0.10
	BonusChannel   = 0.10
)

// ScoreInput records which fields a pattern attempt managed to extract.
type ScoreInput struct {
	BaseConfidence float64
	HasAmount      bool
	HasMerchant    bool
	HasReference   bool
	HasChannel     bool
}

// Score combines a pattern's base confidence with the per-field bonuses and
// clamps the result to [0, 1].
func Score(in ScoreInput) float64 {
	score := in.BaseConfidence
	if in.HasAmount {
		score += BonusAmount
	}
	if in.HasMerchant {
		score += BonusMerchant
	}
	if in.HasReference {
		score += BonusReference
	}
	if in.HasChannel {
		score += BonusChannel
	}
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
