package api

import (
	"encoding/json"
	"net/http"
)

// JSON-RPC 2.0 error codes used by the endpoint.
const (
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// Request is an incoming JSON-RPC 2.0 request envelope.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
	ID      any             `json:"id"`
}

// Response is a JSON-RPC 2.0 response envelope. Exactly one of Result or
// Error is set.
type Response struct {
	JSONRPC string    `json:"jsonrpc"`
	Result  any       `json:"result,omitempty"`
	Error   *RPCError `json:"error,omitempty"`
	ID      any       `json:"id"`
}

// RPCError is a JSON-RPC 2.0 error object.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func (e *RPCError) Error() string {
	return e.Message
}

// rpcError builds an RPCError with the given code and message.
func rpcError(code int, message string) *RPCError {
	return &RPCError{Code: code, Message: message}
}

// httpStatusFor maps a JSON-RPC error code to the HTTP status carried on the
// transport, matching what integrating players already expect.
func httpStatusFor(code int) int {
	switch code {
	case CodeInvalidRequest, CodeInvalidParams:
		return http.StatusBadRequest
	case CodeMethodNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeResult writes a successful JSON-RPC response.
func writeResult(w http.ResponseWriter, id, result any) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(Response{JSONRPC: "2.0", Result: result, ID: id})
}

// writeError writes a JSON-RPC error response with the mapped HTTP status.
func writeError(w http.ResponseWriter, id any, rpcErr *RPCError) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatusFor(rpcErr.Code))
	return json.NewEncoder(w).Encode(Response{JSONRPC: "2.0", Error: rpcErr, ID: id})
}
