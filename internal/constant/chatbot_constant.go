package constant

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
	ChatMessageRoleSystem    = "system"

	ChatSystemPrompt = "You are a compassionate mental wellness support assistant for students. Be warm, non-judgmental, concise, and safety-oriented. Encourage immediate helpline contact if user mentions self-harm intent."

	// ChatFallbackReply is returned whenever no live model reply is available.
	ChatFallbackReply = "I hear you. I am here with you right now. Try this with me: inhale for 4, hold for 4, exhale for 6. If you are in immediate danger or might harm yourself, please call a 24/7 helpline or emergency services now. You deserve immediate human support."

	ChatTemperature = 0.6
	ChatMaxTokens   = 220

	ChatBreakerName             = "chat-completions"
	ChatBreakerFailureThreshold = 5
	ChatBreakerOpenSeconds      = 30
)
