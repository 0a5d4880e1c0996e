package domain

// CoalesceStr returns the first non-empty string from vals.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// CoalescePlan returns the first known plan from vals, or PlanFree.
func CoalescePlan(vals ...Plan) Plan {
	for _, v := range vals {
		if PlanRank(v) >= 0 {
			return v
		}
	}
	return PlanFree
}
