package dto

type ConsentRequest struct {
	Granted *bool `json:"granted"`
}

type ConsentResponse struct {
	Consent string `json:"consent"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type HealthResponse struct {
	Database string `json:"database"`
	Cache    string `json:"cache"`
}
