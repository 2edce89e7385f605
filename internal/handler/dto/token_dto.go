package dto

type TokenResponseDTO struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func NewTokenResponse(token string) TokenResponseDTO {
	return TokenResponseDTO{
		AccessToken: token,
		TokenType:   "bearer",
	}
}
