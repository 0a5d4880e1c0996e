package domain

type UserProfile struct {
	ID          string
	DisplayName string
	Plan        Plan
	Industry    string
}
