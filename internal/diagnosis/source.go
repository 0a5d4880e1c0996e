package diagnosis

import "github.com/alexanderramin/compass/internal/domain"

// Source is the read-only catalog the engine scores against.
// *catalog.Catalog satisfies it.
type Source interface {
	Tools() []domain.ToolRecord
	Challenge(id string) (domain.ChallengeCategory, error)
	Urgency(id string) (domain.UrgencyLevel, error)
	Scope(id string) (domain.ScopeLevel, error)
	Questions() []domain.CapabilityQuestion
}
