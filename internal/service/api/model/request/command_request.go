package request

// CommandRequest 자연어 할인 명령어 요청
type CommandRequest struct {
	// Command 자연어 할인 명령어
	Command string `json:"command" validate:"required" korean:"명령어" example:"Create 20% discount for hoodies from 2024-04-20 to 2024-04-25, automatic, collection Hoodies"`
}
