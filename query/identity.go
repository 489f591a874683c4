package query

import "github.com/ethereum/go-ethereum/common"

//go:generate moq -out ./mock/identity.go -pkg mock . Identity

// Identity provides the address of the connected wallet or session, if any
type Identity interface {
	Address() (common.Address, bool)
}

// StaticIdentity is an Identity that is always connected with the same address
type StaticIdentity common.Address

// Address implements Identity
func (i StaticIdentity) Address() (common.Address, bool) {
	return common.Address(i), true
}

// NoIdentity is an Identity that is never connected
type NoIdentity struct{}

// Address implements Identity
func (NoIdentity) Address() (common.Address, bool) {
	return common.Address{}, false
}
