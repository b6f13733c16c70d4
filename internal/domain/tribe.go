package domain

// Tribe is the account's tribe membership; the zero value means none
type Tribe struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Chatname string `json:"chatname"`
}

// IsZero reports whether the account is not in a tribe
func (t Tribe) IsZero() bool {
	return t.ID == "" && t.Title == ""
}

// FriendsBalance is the referral reward state
type FriendsBalance struct {
	AmountForClaim string `json:"amountForClaim"`
	CanClaim       bool   `json:"canClaim"`
}
