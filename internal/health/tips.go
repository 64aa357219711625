package health

import "ai-health-assistant/internal/domain/model"

// TipRotation cycles through the nutrition tip catalog in order, wrapping
// around at the end.
type TipRotation struct {
	tips []model.Tip
	idx  int
}

func NewTipRotation(tips []model.Tip) *TipRotation {
	return &TipRotation{tips: tips}
}

// Current returns the tip at the rotation cursor.
func (r *TipRotation) Current() (model.Tip, bool) {
	if len(r.tips) == 0 {
		return model.Tip{}, false
	}
	return r.tips[r.idx], true
}

// Next advances the cursor and returns the new tip.
func (r *TipRotation) Next() (model.Tip, bool) {
	if len(r.tips) == 0 {
		return model.Tip{}, false
	}
	r.idx = (r.idx + 1) % len(r.tips)
	return r.tips[r.idx], true
}

// All returns the catalog in order.
func (r *TipRotation) All() []model.Tip { return r.tips }
