package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Length    int   `json:"length"`
	Lowercase *bool `json:"lowercase"`
	Uppercase *bool `json:"uppercase"`
	Digits    *bool `json:"digits"`
	Special   *bool `json:"special"`
	Hash      bool  `json:"hash"`
}

// GenerateResponse represents a generated password.
type GenerateResponse struct {
	Password string   `json:"password"`
	Length   int      `json:"length"`
	Classes  []string `json:"classes"`
	Hash     string   `json:"hash,omitempty"`
}
