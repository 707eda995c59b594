package domain

// Client is a registered buyer. Identity is the national identity
// document number and must be unique across clients.
type Client struct {
	ID       int64
	Name     string
	Identity string
}
