package serverutils

type Response struct {
	Error string `json:"error"`
}

func ErrorResponse(message string) Response {
	return Response{Error: message}
}
