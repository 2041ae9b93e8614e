package api

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Messages []ChatMessage `json:"messages"`
}

type ChatResponse struct {
	Assistant ChatMessage `json:"assistant"`
}

type Error struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
