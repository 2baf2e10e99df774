package models

type ThemeRequest struct {
	Mode string `json:"mode" binding:"required"`
}

type ThemeResponse struct {
	Mode string `json:"mode"`
}
