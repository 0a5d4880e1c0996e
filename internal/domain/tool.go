package domain

// ToolRecord is an entry of the static strategy-tool catalog. Records are
// loaded once at startup and never mutated.
type ToolRecord struct {
	ID           string
	Name         string
	Category     ToolCategory
	Complexity   Complexity
	RequiredPlan Plan
	Description  string
	Duration     string
	Outputs      []string
	Tags         []string
}

// AccessibleOn reports whether a user on plan p may open the tool.
func (t ToolRecord) AccessibleOn(p Plan) bool {
	return PlanAllows(p, t.RequiredPlan)
}
