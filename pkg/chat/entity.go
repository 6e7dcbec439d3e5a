package chat

type Status string

const (
	StatusSuccess Status = "success"
	StatusWarning Status = "warning"
	StatusError   Status = "error"
)

type ErrorKind string

const (
	KindInvalidInput  ErrorKind = "invalid_input"
	KindConfiguration ErrorKind = "configuration_error"
	KindEmptyResponse ErrorKind = "empty_response"
	KindDependency    ErrorKind = "dependency_error"
	KindProcessing    ErrorKind = "processing_error"
)

// Outcome is the normalized result of one chat call, whichever path produced it.
type Outcome struct {
	Response    string
	Status      Status
	ErrorKind   ErrorKind // empty on success
	DebugDetail string    // set only in debug mode
}

const (
	msgInvalidInput  = "Please provide a valid question or prompt."
	msgNotConfigured = "The chat service is not configured: the AI provider API key is missing. Please contact the administrator."
	msgEmptyResponse = "I'm sorry, I couldn't generate a response to that. Please try rephrasing your question."

	msgConnectivity = "I'm having trouble connecting to the AI service right now. Please try again in a few moments."
	msgTimeout      = "The request took too long to process. Please try again with a shorter or simpler question."
	msgRateLimited  = "The AI service is receiving too many requests right now. Please wait a moment and try again."
	msgGeneric      = "Sorry, something went wrong while processing your request. Please try again."
)

const systemInstruction = `You are Cyber Buddy, a cybersecurity education assistant.
Only answer questions about cybersecurity, networking, secure software and related IT topics; politely steer other requests back to security.
Explain concepts so that beginners can follow, and go deeper when the question is advanced.
Include practical examples such as commands, configurations or short code snippets where they help.
Always mention legal and ethical use: only test systems you own or are explicitly authorized to assess.`
