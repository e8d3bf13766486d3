package http

// Transaction is a single logged request paired with its response.
type Transaction struct {
	Request  Request
	Response Response
}

func (t Transaction) Validate() error {
	if err := t.Request.Validate(); err != nil {
		return err
	}

	return t.Response.Validate()
}

func (t Transaction) Equal(other Transaction) bool {
	return t.Request.Equal(other.Request) && t.Response.Equal(other.Response)
}
