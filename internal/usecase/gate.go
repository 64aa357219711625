package usecase

import (
	"ai-health-assistant/internal/domain"
	"ai-health-assistant/internal/domain/model"
)

// FeatureGate decides, for a feature invocation, whether the authenticated
// or the degraded/anonymous code path applies. Pure function of the
// authentication flag; binary, not role-based; never performs I/O.
type FeatureGate struct{}

func (FeatureGate) CanUseFeature(isAuthenticated bool) bool { return isAuthenticated }

// Require returns ErrNotAuthenticated when the session cannot use a gated
// feature, for call sites that want an error instead of a branch.
func (g FeatureGate) Require(s model.Session) error {
	if !g.CanUseFeature(s.IsAuthenticated()) {
		return domain.ErrNotAuthenticated
	}
	return nil
}
