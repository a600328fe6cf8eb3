package models

type CreateSessionRequest struct {
	Platform string `json:"platform" validate:"omitempty,oneof=kakao steam console"`
}

type CreateSessionResponse struct {
	SessionID string `json:"session_id"`
}

type SetPlatformRequest struct {
	Platform string `json:"platform" validate:"required,oneof=kakao steam console"`
}

type SearchRequest struct {
	Nickname string `json:"nickname" validate:"required,max=64"`
}

type LeaderboardRequest struct {
	Platform string `json:"platform" validate:"omitempty,oneof=kakao steam console"`
	GameMode string `json:"game_mode" validate:"required,oneof=solo duo squad solo-fpp duo-fpp squad-fpp"`
}
