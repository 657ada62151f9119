package controllers

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	Success bool        `json:"success"`
	Token   string      `json:"token"`
	User    interface{} `json:"user"`
}
