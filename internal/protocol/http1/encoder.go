package http1

import "github.com/indigo-web/txlog/http"

// AppendRequest renders the request in the canonical form: single spaces, CRLF line
// terminators and the Host line right after the request line.
func AppendRequest(buff []byte, request http.Request) []byte {
	buff = appendRequestLine(buff, request)
	buff = appendHeaders(buff, request.Headers)
	return appendBody(buff, request.Body)
}

func AppendResponse(buff []byte, response http.Response) []byte {
	buff = appendStatusLine(buff, response)
	buff = appendHeaders(buff, response.Headers)
	return appendBody(buff, response.Body)
}

func AppendTransaction(buff []byte, tx http.Transaction) []byte {
	return AppendResponse(AppendRequest(buff, tx.Request), tx.Response)
}
