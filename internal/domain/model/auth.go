package model

const StatusOK = "OK"

type Authorization struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type AuthorizationAnswer struct {
	Token  string `json:"token"`
	Status string `json:"status"`
}

// Valid reports whether the answer carries a usable token.
func (a *AuthorizationAnswer) Valid() bool {
	return a != nil && a.Token != "" && (a.Status == "" || a.Status == StatusOK)
}
